package routes

import (
	"supermall/auth"
	"supermall/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler bundles the dependencies every route needs: the store handle,
// the logger and the token service are injected rather than imported.
type Handler struct {
	db       *gorm.DB
	log      zerolog.Logger
	tokens   *auth.TokenService
	validate *validator.Validate
}

func SetupRoutes(app *fiber.App, database *gorm.DB, logger zerolog.Logger, tokens *auth.TokenService) {
	h := &Handler{
		db:       database,
		log:      logger,
		tokens:   tokens,
		validate: validator.New(),
	}

	api := app.Group("/api")

	api.Get("/health", h.health)
	api.Post("/upload", h.protect, h.authorize(models.RoleAdmin), h.uploadImage)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.register)
	authGroup.Post("/login", h.login)
	authGroup.Get("/me", h.protect, h.me)

	categories := api.Group("/categories")
	categories.Get("/", h.listCategories)
	categories.Get("/:id", h.getCategory)
	categories.Post("/", h.protect, h.authorize(models.RoleAdmin), h.createCategory)
	categories.Put("/:id", h.protect, h.authorize(models.RoleAdmin), h.updateCategory)
	categories.Delete("/:id", h.protect, h.authorize(models.RoleAdmin), h.deleteCategory)

	floors := api.Group("/floors")
	floors.Get("/", h.listFloors)
	floors.Get("/:id", h.getFloor)
	floors.Post("/", h.protect, h.authorize(models.RoleAdmin), h.createFloor)
	floors.Put("/:id", h.protect, h.authorize(models.RoleAdmin), h.updateFloor)
	floors.Delete("/:id", h.protect, h.authorize(models.RoleAdmin), h.deleteFloor)

	shops := api.Group("/shops")
	shops.Get("/", h.listShops)
	shops.Get("/floor/:floorId", h.listShopsByFloor)
	shops.Get("/category/:categoryId", h.listShopsByCategory)
	shops.Get("/:id", h.getShop)
	shops.Post("/", h.protect, h.authorize(models.RoleAdmin), h.createShop)
	shops.Put("/:id", h.protect, h.authorize(models.RoleAdmin), h.updateShop)
	shops.Delete("/:id", h.protect, h.authorize(models.RoleAdmin), h.deleteShop)

	products := api.Group("/products")
	products.Get("/", h.listProducts)
	products.Get("/offers", h.listProductsWithOffers)
	products.Get("/compare", h.compareProducts)
	products.Get("/:id", h.getProduct)
	products.Post("/", h.protect, h.authorize(models.RoleAdmin), h.createProduct)
	products.Put("/:id", h.protect, h.authorize(models.RoleAdmin), h.updateProduct)
	products.Delete("/:id", h.protect, h.authorize(models.RoleAdmin), h.deleteProduct)

	offers := api.Group("/offers")
	offers.Get("/", h.listOffers)
	offers.Get("/all", h.protect, h.authorize(models.RoleAdmin), h.listAllOffers)
	offers.Get("/:id", h.getOffer)
	offers.Post("/", h.protect, h.authorize(models.RoleAdmin), h.createOffer)
	offers.Post("/:id/apply", h.protect, h.authorize(models.RoleAdmin), h.applyOffer)
	offers.Put("/:id", h.protect, h.authorize(models.RoleAdmin), h.updateOffer)
	offers.Delete("/:id", h.protect, h.authorize(models.RoleAdmin), h.deleteOffer)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "SuperMall API is running",
	})
}
