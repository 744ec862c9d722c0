package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"supermall/auth"
	"supermall/db"
	"supermall/models"
	"supermall/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	tokens *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))

	tokens := auth.NewTokenService("test-secret")
	app := fiber.New()
	routes.SetupRoutes(app, database, zerolog.Nop(), tokens)

	return &testEnv{app: app, db: database, tokens: tokens}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) envelope {
	t.Helper()

	env := decode(t, resp)
	require.NotNil(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, out))
	return env
}

// --- Fixtures ---

func (e *testEnv) createUser(t *testing.T, email string, role models.Role) (models.User, string) {
	t.Helper()

	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{Name: "Test User", Email: email, Password: hashed, Role: role}
	require.NoError(t, e.db.Create(&user).Error)

	token, err := e.tokens.Issue(user.ID)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	_, token := e.createUser(t, "admin@supermall.com", models.RoleAdmin)
	return token
}

func (e *testEnv) createCategory(t *testing.T, name string, order int) models.Category {
	t.Helper()
	category := models.Category{Name: name, Icon: "🏪", Order: order, IsActive: true}
	require.NoError(t, e.db.Create(&category).Error)
	return category
}

func (e *testEnv) createFloor(t *testing.T, name string, number int) models.Floor {
	t.Helper()
	floor := models.Floor{Name: name, Number: number, IsActive: true}
	require.NoError(t, e.db.Create(&floor).Error)
	return floor
}

func (e *testEnv) createShop(t *testing.T, name string, categoryID, floorID uint) models.Shop {
	t.Helper()
	shop := models.Shop{Name: name, CategoryID: categoryID, FloorID: floorID, IsActive: true}
	require.NoError(t, e.db.Create(&shop).Error)
	return shop
}

func (e *testEnv) createProduct(t *testing.T, name string, price float64, categoryID, shopID uint) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, CategoryID: categoryID, ShopID: shopID, IsActive: true}
	require.NoError(t, e.db.Create(&product).Error)
	return product
}

func (e *testEnv) createOffer(t *testing.T, title string, shopID uint, start, end time.Time) models.Offer {
	t.Helper()
	offer := models.Offer{
		Title: title, DiscountType: "percentage", DiscountValue: 10,
		ShopID: shopID, StartDate: start, EndDate: end, IsActive: true,
	}
	require.NoError(t, e.db.Create(&offer).Error)
	return offer
}

// catalog creates one category, floor and shop to hang products off.
func (e *testEnv) catalog(t *testing.T) (models.Category, models.Floor, models.Shop) {
	t.Helper()
	category := e.createCategory(t, "Electronics", 1)
	floor := e.createFloor(t, "Second Floor", 2)
	shop := e.createShop(t, "TechZone", category.ID, floor.ID)
	return category, floor, shop
}
