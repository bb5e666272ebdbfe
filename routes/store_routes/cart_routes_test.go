package store_routes_test

import (
	"net/http"
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarts_Lifecycle(t *testing.T) {
	env := testutil.Setup(t)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")

	w := env.Do(http.MethodPost, "/api/v1/store/carts", nil, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var cart models.CartResponse
	testutil.Decode(t, w, &cart)
	assert.Empty(t, cart.Items)
	itemsPath := "/api/v1/store/carts/" + cart.ID.String() + "/items"

	add := map[string]any{"product_id": product.ID.String(), "quantity": 2}
	w = env.Do(http.MethodPost, itemsPath, add, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var first models.AddCartItemResponse
	testutil.Decode(t, w, &first)
	assert.Equal(t, 2, first.Quantity)

	// Adding the same product again increments the existing line
	w = env.Do(http.MethodPost, itemsPath, add, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var second models.AddCartItemResponse
	testutil.Decode(t, w, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.Quantity)

	w = env.Do(http.MethodGet, "/api/v1/store/carts/"+cart.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.TotalPrice.Equal(decimal.RequireFromString("16")), cart.TotalPrice.String())

	w = env.Do(http.MethodDelete, "/api/v1/store/carts/"+cart.ID.String(), nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.Do(http.MethodGet, "/api/v1/store/carts/"+cart.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartItems_PatchOnlyChangesQuantity(t *testing.T) {
	env := testutil.Setup(t)
	collection := env.CreateCollection("Grocery")
	bread := env.CreateProduct(collection, "Bread", "4.00")
	coffee := env.CreateProduct(collection, "Coffee", "14.00")
	cart := env.CreateCart(bread)

	var item models.CartItem
	require.NoError(t, env.DB.First(&item, "cart_id = ?", cart.ID).Error)
	itemPath := "/api/v1/store/carts/" + cart.ID.String() + "/items/" + item.ID.String()

	w := env.Do(http.MethodPatch, itemPath, map[string]any{"quantity": 7, "product_id": coffee.ID.String()}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.UpdateCartItemResponse
	testutil.Decode(t, w, &got)
	assert.Equal(t, 7, got.Quantity)

	require.NoError(t, env.DB.First(&item, "id = ?", item.ID).Error)
	assert.Equal(t, bread.ID, item.ProductID)
	assert.Equal(t, 7, item.Quantity)

	w = env.Do(http.MethodPatch, itemPath, map[string]any{"quantity": 0}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.Do(http.MethodDelete, itemPath, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCartItems_Validation(t *testing.T) {
	env := testutil.Setup(t)
	cart := env.CreateCart()
	itemsPath := "/api/v1/store/carts/" + cart.ID.String() + "/items"

	w := env.Do(http.MethodPost, itemsPath, map[string]any{"product_id": uuid.NewString(), "quantity": 1}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var fields map[string]string
	testutil.Decode(t, w, &fields)
	assert.Equal(t, "No product with the given ID was found.", fields["product_id"])

	w = env.Do(http.MethodPost, "/api/v1/store/carts/"+uuid.NewString()+"/items", map[string]any{"product_id": uuid.NewString(), "quantity": 1}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
