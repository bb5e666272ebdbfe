package store_routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders_CheckoutConsumesCart(t *testing.T) {
	env := testutil.Setup(t)
	user, token := env.CreateUser("jane@example.com", false)
	collection := env.CreateCollection("Grocery")
	bread := env.CreateProduct(collection, "Bread", "4.00")
	coffee := env.CreateProduct(collection, "Coffee", "14.00")
	cart := env.CreateCart(bread, coffee)

	w := env.Do(http.MethodPost, "/api/v1/store/orders", map[string]any{"cart_id": cart.ID.String()}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.OrderResponse
	testutil.Decode(t, w, &order)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)

	// The customer profile is created on first checkout
	var customer models.Customer
	require.NoError(t, env.DB.First(&customer, "user_id = ?", user.ID).Error)
	assert.Equal(t, customer.ID, order.CustomerID)

	var carts, cartItems int64
	env.DB.Model(&models.Cart{}).Where("id = ?", cart.ID).Count(&carts)
	env.DB.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&cartItems)
	assert.Zero(t, carts)
	assert.Zero(t, cartItems)
}

func TestOrders_CheckoutValidation(t *testing.T) {
	env := testutil.Setup(t)
	_, token := env.CreateUser("jane@example.com", false)

	w := env.Do(http.MethodPost, "/api/v1/store/orders", map[string]any{"cart_id": uuid.NewString()}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var fields map[string]string
	testutil.Decode(t, w, &fields)
	assert.Equal(t, "No cart with the given ID was found.", fields["cart_id"])

	empty := env.CreateCart()
	w = env.Do(http.MethodPost, "/api/v1/store/orders", map[string]any{"cart_id": empty.ID.String()}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	testutil.Decode(t, w, &fields)
	assert.Equal(t, "The cart is empty.", fields["cart_id"])

	w = env.Do(http.MethodPost, "/api/v1/store/orders", map[string]any{"cart_id": empty.ID.String()}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrders_VisibilityScopedToCustomer(t *testing.T) {
	env := testutil.Setup(t)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")

	jane, janeToken := env.CreateUser("jane@example.com", false)
	bob, _ := env.CreateUser("bob@example.com", false)
	_, staffToken := env.CreateUser("staff@example.com", true)
	_, strangerToken := env.CreateUser("stranger@example.com", false)

	janeOrder := env.CreateOrder(env.CreateCustomer(jane), product, 1)
	bobOrder := env.CreateOrder(env.CreateCustomer(bob), product, 2)

	t.Run("customer sees own orders", func(t *testing.T) {
		w := env.Do(http.MethodGet, "/api/v1/store/orders", nil, janeToken)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []models.OrderResponse
		testutil.Decode(t, w, &orders)
		require.Len(t, orders, 1)
		assert.Equal(t, janeOrder.ID, orders[0].ID)

		w = env.Do(http.MethodGet, "/api/v1/store/orders/"+bobOrder.ID.String(), nil, janeToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("staff sees every order", func(t *testing.T) {
		w := env.Do(http.MethodGet, "/api/v1/store/orders", nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []models.OrderResponse
		testutil.Decode(t, w, &orders)
		assert.Len(t, orders, 2)
	})

	t.Run("user without profile sees nothing", func(t *testing.T) {
		w := env.Do(http.MethodGet, "/api/v1/store/orders", nil, strangerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []models.OrderResponse
		testutil.Decode(t, w, &orders)
		assert.Empty(t, orders)
	})
}

func TestOrders_StaffUpdateAndDelete(t *testing.T) {
	env := testutil.Setup(t)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")
	jane, janeToken := env.CreateUser("jane@example.com", false)
	_, staffToken := env.CreateUser("staff@example.com", true)
	order := env.CreateOrder(env.CreateCustomer(jane), product, 1)
	path := "/api/v1/store/orders/" + order.ID.String()

	w := env.Do(http.MethodPatch, path, map[string]any{"payment_status": "C"}, janeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.Do(http.MethodPatch, path, map[string]any{"payment_status": "X"}, staffToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.Do(http.MethodPatch, path, map[string]any{"payment_status": "C"}, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.UpdateOrderResponse
	testutil.Decode(t, w, &updated)
	assert.Equal(t, models.PaymentStatusComplete, updated.PaymentStatus)

	w = env.Do(http.MethodDelete, path, nil, staffToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var items int64
	env.DB.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&items)
	assert.Zero(t, items)
}

func TestOrders_InvoiceDownload(t *testing.T) {
	env := testutil.Setup(t)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")
	jane, janeToken := env.CreateUser("jane@example.com", false)
	order := env.CreateOrder(env.CreateCustomer(jane), product, 3)

	w := env.Do(http.MethodGet, "/api/v1/store/orders/"+order.ID.String()+"/invoice", nil, janeToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, len(w.Body.Bytes()) > 4)
	assert.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
}

func TestOrders_SendInvoiceEmail(t *testing.T) {
	var captured struct {
		To          string `json:"to"`
		Subject     string `json:"subject"`
		Attachments []struct {
			Filename string `json:"filename"`
		} `json:"attachments"`
	}
	var authHeader string
	resend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer resend.Close()

	env := testutil.Setup(t)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")
	jane, janeToken := env.CreateUser("jane@example.com", false)
	_, staffToken := env.CreateUser("staff@example.com", true)
	order := env.CreateOrder(env.CreateCustomer(jane), product, 1)
	path := "/api/v1/store/orders/" + order.ID.String() + "/invoice/send"

	t.Run("not configured", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY", "")
		w := env.Do(http.MethodPost, path, nil, staffToken)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("RESEND_API_URL", resend.URL)

	w := env.Do(http.MethodPost, path, nil, janeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.Do(http.MethodPost, path, nil, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bearer re_test", authHeader)
	assert.Equal(t, "jane@example.com", captured.To)
	require.Len(t, captured.Attachments, 1)
	assert.Equal(t, "invoice-"+order.ID.String()+".pdf", captured.Attachments[0].Filename)
}
