package seed

import (
	"log"
	"time"

	"supermall/auth"
	"supermall/models"

	"gorm.io/gorm"
)

// Run wipes the catalog tables and repopulates them with demo data,
// including the guaranteed admin account (admin@supermall.com / admin123).
func Run(db *gorm.DB) error {
	tables := []interface{}{
		&models.Product{}, &models.Offer{}, &models.Shop{},
		&models.Floor{}, &models.Category{}, &models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	log.Println("Existing data cleared")

	hashed, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin User",
		Email:    "admin@supermall.com",
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin user created:", admin.Email)

	categories := []models.Category{
		{Name: "Electronics", Icon: "📱", Description: "Latest gadgets and electronics", Order: 1, IsActive: true},
		{Name: "Fashion", Icon: "👗", Description: "Trendy clothing and accessories", Order: 2, IsActive: true},
		{Name: "Food & Dining", Icon: "🍕", Description: "Restaurants and food courts", Order: 3, IsActive: true},
		{Name: "Sports & Fitness", Icon: "⚽", Description: "Sports equipment and gear", Order: 4, IsActive: true},
		{Name: "Home & Living", Icon: "🏠", Description: "Home decor and furniture", Order: 5, IsActive: true},
		{Name: "Beauty & Health", Icon: "💄", Description: "Beauty products and wellness", Order: 6, IsActive: true},
		{Name: "Books & Stationery", Icon: "📚", Description: "Books, office supplies", Order: 7, IsActive: true},
		{Name: "Jewelry", Icon: "💎", Description: "Fine jewelry and watches", Order: 8, IsActive: true},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	log.Println(len(categories), "categories created")

	floors := []models.Floor{
		{Name: "Ground Floor", Number: 0, Description: "Main entrance, Food Court, Information Desk", IsActive: true},
		{Name: "First Floor", Number: 1, Description: "Fashion, Beauty, Jewelry stores", IsActive: true},
		{Name: "Second Floor", Number: 2, Description: "Electronics, Home & Living", IsActive: true},
		{Name: "Third Floor", Number: 3, Description: "Entertainment, Sports, Cinema", IsActive: true},
	}
	if err := db.Create(&floors).Error; err != nil {
		return err
	}
	log.Println(len(floors), "floors created")

	shops := []models.Shop{
		{
			Name: "TechZone", Description: "Your one-stop destination for the latest smartphones, laptops, and gaming gear.",
			CategoryID: categories[0].ID, FloorID: floors[2].ID, Location: "Unit A-201", ShopNumber: "201",
			ContactPhone: "+91 98765 43210", ContactEmail: "techzone@supermall.com",
			OpeningTime: "10:00", ClosingTime: "21:00", Rating: 4.5, TotalRatings: 256, IsActive: true,
		},
		{
			Name: "Fashion Hub", Description: "Premium fashion brands for men, women, and kids. Latest trends at best prices.",
			CategoryID: categories[1].ID, FloorID: floors[1].ID, Location: "Unit B-101", ShopNumber: "101",
			ContactPhone: "+91 98765 43211", ContactEmail: "fashionhub@supermall.com",
			OpeningTime: "10:00", ClosingTime: "21:00", Rating: 4.3, TotalRatings: 189, IsActive: true,
		},
		{
			Name: "Pizza Paradise", Description: "Authentic Italian pizzas made fresh with premium ingredients.",
			CategoryID: categories[2].ID, FloorID: floors[0].ID, Location: "Food Court - FC01", ShopNumber: "FC01",
			ContactPhone: "+91 98765 43212", ContactEmail: "pizza@supermall.com",
			OpeningTime: "11:00", ClosingTime: "22:00", Rating: 4.7, TotalRatings: 423, IsActive: true,
		},
		{
			Name: "SportsMart", Description: "Complete sports equipment and fitness gear from top brands.",
			CategoryID: categories[3].ID, FloorID: floors[3].ID, Location: "Unit C-301", ShopNumber: "301",
			ContactPhone: "+91 98765 43213", ContactEmail: "sports@supermall.com",
			OpeningTime: "10:00", ClosingTime: "21:00", Rating: 4.4, TotalRatings: 167, IsActive: true,
		},
		{
			Name: "Home Elegance", Description: "Elegant home decor, furniture, and lifestyle products.",
			CategoryID: categories[4].ID, FloorID: floors[2].ID, Location: "Unit A-202", ShopNumber: "202",
			ContactPhone: "+91 98765 43214", ContactEmail: "home@supermall.com",
			OpeningTime: "10:00", ClosingTime: "21:00", Rating: 4.2, TotalRatings: 98, IsActive: true,
		},
	}
	if err := db.Create(&shops).Error; err != nil {
		return err
	}
	log.Println(len(shops), "shops created")

	products := []models.Product{
		{
			Name: "Galaxy S24 Ultra", Description: "Flagship smartphone with 200MP camera and S Pen.",
			Price: 1199, OriginalPrice: 1299, CategoryID: categories[0].ID, ShopID: shops[0].ID,
			Brand: "Samsung", Stock: 25, Rating: 4.6, TotalRatings: 87, IsActive: true,
			Specifications: map[string]string{"display": "6.8 inch AMOLED", "storage": "256GB", "ram": "12GB"},
		},
		{
			Name: "MacBook Air M3", Description: "Thin and light laptop with all-day battery life.",
			Price: 1099, CategoryID: categories[0].ID, ShopID: shops[0].ID,
			Brand: "Apple", Stock: 12, Rating: 4.8, TotalRatings: 64, IsActive: true,
			Specifications: map[string]string{"display": "13.6 inch Retina", "storage": "256GB", "ram": "8GB"},
		},
		{
			Name: "Classic Denim Jacket", Description: "Timeless denim jacket in a relaxed fit.",
			Price: 59, OriginalPrice: 89, CategoryID: categories[1].ID, ShopID: shops[1].ID,
			Brand: "Levi's", Stock: 40, Rating: 4.3, TotalRatings: 132, IsActive: true,
		},
		{
			Name: "Margherita Pizza", Description: "Fresh mozzarella, basil, and tomato sauce on a thin crust.",
			Price: 12, CategoryID: categories[2].ID, ShopID: shops[2].ID,
			Stock: 100, Rating: 4.7, TotalRatings: 310, IsActive: true,
		},
		{
			Name: "Pro Running Shoes", Description: "Lightweight running shoes with responsive cushioning.",
			Price: 129, OriginalPrice: 159, CategoryID: categories[3].ID, ShopID: shops[3].ID,
			Brand: "Nike", Stock: 30, Rating: 4.5, TotalRatings: 201, IsActive: true,
		},
		{
			Name: "Oak Coffee Table", Description: "Solid oak coffee table with a natural finish.",
			Price: 249, CategoryID: categories[4].ID, ShopID: shops[4].ID,
			Stock: 8, Rating: 4.1, TotalRatings: 23, IsActive: true,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Println(len(products), "products created")

	now := time.Now()
	offers := []models.Offer{
		{
			Title: "Electronics Week", Description: "Up to 20% off on flagship gadgets.",
			DiscountType: "percentage", DiscountValue: 20, ShopID: shops[0].ID,
			StartDate: now.AddDate(0, 0, -3), EndDate: now.AddDate(0, 0, 11), IsActive: true,
			TermsAndConditions: "Valid on selected items only.", MinPurchaseAmount: 100, MaxDiscountAmount: 300,
		},
		{
			Title: "Season Sale", Description: "Flat 30% off on all apparel.",
			DiscountType: "percentage", DiscountValue: 30, ShopID: shops[1].ID,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 6), IsActive: true,
		},
		{
			Title: "Weekend Feast", Description: "$5 off orders above $25.",
			DiscountType: "fixed", DiscountValue: 5, ShopID: shops[2].ID,
			StartDate: now.AddDate(0, 0, -14), EndDate: now.AddDate(0, 0, -7), IsActive: true,
			MinPurchaseAmount: 25,
		},
	}
	if err := db.Create(&offers).Error; err != nil {
		return err
	}
	log.Println(len(offers), "offers created")

	// Link the electronics offer to the phones it covers.
	err = db.Model(&models.Product{}).
		Where("id IN ?", []uint{products[0].ID, products[1].ID}).
		Updates(map[string]interface{}{"has_offer": true, "offer_id": offers[0].ID}).Error
	if err != nil {
		return err
	}

	log.Println("Seeding complete")
	return nil
}
