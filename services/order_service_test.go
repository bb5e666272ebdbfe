package services_test

import (
	"context"
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderFromCart_FreezesPrices(t *testing.T) {
	env := testutil.Setup(t)
	user, _ := env.CreateUser("jane@example.com", false)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")
	cart := env.CreateCart(product)

	order, err := services.CreateOrderFromCart(context.Background(), user.ID, cart.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)

	// Repricing the product later leaves the order line alone
	require.NoError(t, env.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("unit_price", decimal.RequireFromString("9.00")).Error)

	var item models.OrderItem
	require.NoError(t, env.DB.First(&item, "order_id = ?", order.ID).Error)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("4.00")), item.UnitPrice.String())
}

func TestCreateOrderFromCart_Errors(t *testing.T) {
	env := testutil.Setup(t)
	user, _ := env.CreateUser("jane@example.com", false)

	_, err := services.CreateOrderFromCart(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, services.ErrCartNotFound)

	empty := env.CreateCart()
	_, err = services.CreateOrderFromCart(context.Background(), user.ID, empty.ID)
	assert.ErrorIs(t, err, services.ErrCartEmpty)

	// A failed checkout leaves no order behind
	var orders int64
	env.DB.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestGetOrCreateCustomer_IsIdempotent(t *testing.T) {
	env := testutil.Setup(t)
	user, _ := env.CreateUser("jane@example.com", false)

	first, err := services.GetOrCreateCustomer(context.Background(), env.DB, user.ID)
	require.NoError(t, err)
	second, err := services.GetOrCreateCustomer(context.Background(), env.DB, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.MembershipBronze, second.Membership)
}

func TestAddCartItem_Increments(t *testing.T) {
	env := testutil.Setup(t)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")
	cart := env.CreateCart()
	req := models.AddCartItemRequest{ProductID: product.ID, Quantity: 3}

	first, err := services.AddCartItem(context.Background(), cart.ID, req)
	require.NoError(t, err)
	second, err := services.AddCartItem(context.Background(), cart.ID, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 6, second.Quantity)

	_, err = services.AddCartItem(context.Background(), cart.ID, models.AddCartItemRequest{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	_, err = services.AddCartItem(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, services.ErrCartNotFound)
}

func TestDeleteOrder_RemovesItems(t *testing.T) {
	env := testutil.Setup(t)
	user, _ := env.CreateUser("jane@example.com", false)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")
	order := env.CreateOrder(env.CreateCustomer(user), product, 2)

	require.NoError(t, services.DeleteOrder(context.Background(), order.ID))
	assert.ErrorIs(t, services.DeleteOrder(context.Background(), order.ID), services.ErrOrderNotFound)

	var items int64
	env.DB.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, items)
}

func TestGenerateOrderInvoicePDF(t *testing.T) {
	product := models.Product{ID: uuid.New(), Title: "Bread", UnitPrice: decimal.RequireFromString("4.00")}
	order := &models.Order{
		ID:            uuid.New(),
		PaymentStatus: models.PaymentStatusComplete,
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 2, UnitPrice: product.UnitPrice, Product: &product},
		},
	}

	buf, err := services.GenerateOrderInvoicePDF(order, services.InvoiceCustomer{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 4)
	assert.Equal(t, "%PDF", string(buf.Bytes()[:4]))
}
