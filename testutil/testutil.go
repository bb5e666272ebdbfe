// Package testutil wires an in-memory store for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	collection_cache "github.com/Modeva-Ecommerce/storefront-api/cache"
	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/routes"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const jwtSecret = "test-secret"

// Env is a router backed by a private sqlite database.
type Env struct {
	T      *testing.T
	DB     *gorm.DB
	Router *gin.Engine
}

// Setup points config.StoreGorm at a fresh in-memory database and builds the
// router. Redis and the pgx pool stay nil, which disables rate limiting and
// login tracking.
func Setup(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.AutoMigrate(db))

	prevGorm, prevRedis, prevPool := config.StoreGorm, config.RedisClient, config.StoreDB
	config.StoreGorm = db
	config.RedisClient = nil
	config.StoreDB = nil
	t.Cleanup(func() {
		sqlDB.Close()
		config.StoreGorm, config.RedisClient, config.StoreDB = prevGorm, prevRedis, prevPool
	})

	collection_cache.Invalidate()
	require.NoError(t, services.InitJWTService(jwtSecret, time.Hour))
	utils.RegisterValidators()

	router := routes.SetupRouter(config.Settings{
		Port:          "0",
		AppEnv:        "test",
		CORSOrigins:   []string{"http://localhost:3000"},
		RateLimitMax:  100,
		RateLimitSpan: time.Minute,
	})

	return &Env{T: t, DB: db, Router: router}
}

// Do performs a request and returns the recorder. body may be nil.
func (e *Env) Do(method, path string, body any, token string) *httptest.ResponseRecorder {
	e.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.T, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals an ApiResponse envelope, placing data into out when given.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out any) models.ApiResponse {
	t.Helper()

	var envelope struct {
		models.ApiResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	if out != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return envelope.ApiResponse
}

// ════════════════════════════════════════════════════════════
// Factories
// ════════════════════════════════════════════════════════════

// CreateUser inserts a user and returns it with a signed token.
func (e *Env) CreateUser(email string, staff bool, perms ...string) (models.User, string) {
	e.T.Helper()

	hash, err := services.NewPasswordService(4).HashPassword("password123")
	require.NoError(e.T, err)

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		IsStaff:      staff,
		Permissions:  models.PermissionList(perms),
	}
	require.NoError(e.T, e.DB.Create(&user).Error)

	token, err := services.GenerateUserJWT(user.ID.String(), user.Email, user.IsStaff)
	require.NoError(e.T, err)
	return user, token
}

func (e *Env) CreateCustomer(user models.User) models.Customer {
	e.T.Helper()
	customer := models.Customer{UserID: user.ID, Phone: "555-0100"}
	require.NoError(e.T, e.DB.Create(&customer).Error)
	return customer
}

func (e *Env) CreateCollection(title string) models.Collection {
	e.T.Helper()
	collection := models.Collection{Title: title}
	require.NoError(e.T, e.DB.Create(&collection).Error)
	return collection
}

func (e *Env) CreateProduct(collection models.Collection, title, price string) models.Product {
	e.T.Helper()
	product := models.Product{
		Title:        title,
		Slug:         title,
		UnitPrice:    decimal.RequireFromString(price),
		Inventory:    10,
		CollectionID: collection.ID,
	}
	require.NoError(e.T, e.DB.Create(&product).Error)
	return product
}

// CreateCart inserts a cart holding one line per product.
func (e *Env) CreateCart(products ...models.Product) models.Cart {
	e.T.Helper()
	cart := models.Cart{}
	require.NoError(e.T, e.DB.Create(&cart).Error)
	for _, p := range products {
		item := models.CartItem{CartID: cart.ID, ProductID: p.ID, Quantity: 1}
		require.NoError(e.T, e.DB.Create(&item).Error)
	}
	return cart
}

// CreateOrder inserts an order with a single line for product.
func (e *Env) CreateOrder(customer models.Customer, product models.Product, quantity int) models.Order {
	e.T.Helper()
	order := models.Order{CustomerID: customer.ID}
	require.NoError(e.T, e.DB.Create(&order).Error)
	item := models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.UnitPrice,
	}
	require.NoError(e.T, e.DB.Create(&item).Error)
	return order
}

// UseMiniredis points config.RedisClient at an in-process Redis for this test.
func (e *Env) UseMiniredis() *miniredis.Miniredis {
	e.T.Helper()
	mr := miniredis.RunT(e.T)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	config.RedisClient = client
	e.T.Cleanup(func() { client.Close() })
	return mr
}
