package store_routes_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_TopProductsCountsCompletedOrdersOnly(t *testing.T) {
	env := testutil.Setup(t)
	collection := env.CreateCollection("Grocery")
	bread := env.CreateProduct(collection, "Bread", "4.00")
	coffee := env.CreateProduct(collection, "Coffee", "14.00")
	jane, _ := env.CreateUser("jane@example.com", false)
	_, staffToken := env.CreateUser("staff@example.com", true)
	customer := env.CreateCustomer(jane)

	paid := env.CreateOrder(customer, coffee, 2)
	env.CreateOrder(customer, bread, 10) // pending, ignored
	require.NoError(t, env.DB.Model(&models.Order{}).Where("id = ?", paid.ID).
		Update("payment_status", models.PaymentStatusComplete).Error)

	w := env.Do(http.MethodGet, "/api/v1/store/analytics/top-products", nil, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var top []models.TopProduct
	testutil.Decode(t, w, &top)
	require.Len(t, top, 1)
	assert.Equal(t, "Coffee", top[0].ProductTitle)
	assert.Equal(t, 2, top[0].SalesCount)
	assert.InDelta(t, 28.0, top[0].Revenue, 0.001)
	assert.InDelta(t, 100.0, top[0].RevenuePercent, 0.001)
}

func TestAnalytics_DevicesAndAccess(t *testing.T) {
	env := testutil.Setup(t)
	user, token := env.CreateUser("jane@example.com", false)
	_, staffToken := env.CreateUser("staff@example.com", true)

	now := time.Now().UTC()
	for _, device := range []string{"mobile", "mobile", "desktop", "tablet"} {
		require.NoError(t, env.DB.Create(&models.LoginEvent{
			ID:         uuid.New(),
			UserID:     user.ID,
			LoggedInAt: now,
			DeviceType: device,
		}).Error)
	}

	w := env.Do(http.MethodGet, "/api/v1/store/analytics/devices", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.Do(http.MethodGet, "/api/v1/store/analytics/devices?days=0", nil, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var devices []models.DeviceAnalytics
	testutil.Decode(t, w, &devices)
	require.Len(t, devices, 3)
	assert.Equal(t, "mobile", devices[0].DeviceType)
	assert.Equal(t, 2, devices[0].LoginCount)
	assert.InDelta(t, 50.0, devices[0].Percentage, 0.001)

	w = env.Do(http.MethodGet, "/api/v1/store/analytics/devices?days=9999", nil, staffToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
