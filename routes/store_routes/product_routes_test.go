package store_routes_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_ListFiltersAndOrdering(t *testing.T) {
	env := testutil.Setup(t)
	grocery := env.CreateCollection("Grocery")
	beauty := env.CreateCollection("Beauty")
	env.CreateProduct(grocery, "Bread", "4.00")
	env.CreateProduct(grocery, "Coffee", "14.00")
	env.CreateProduct(beauty, "Lotion", "12.50")

	t.Run("collection filter", func(t *testing.T) {
		w := env.Do(http.MethodGet, "/api/v1/store/products?collection_id="+grocery.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var products []models.ProductResponse
		resp := testutil.Decode(t, w, &products)
		assert.Len(t, products, 2)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 2, resp.Meta.Total)
	})

	t.Run("price range and descending order", func(t *testing.T) {
		w := env.Do(http.MethodGet, "/api/v1/store/products?unit_price__gt=5&ordering=-unit_price", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var products []models.ProductResponse
		testutil.Decode(t, w, &products)
		require.Len(t, products, 2)
		assert.Equal(t, "Coffee", products[0].Title)
		assert.Equal(t, "Lotion", products[1].Title)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		w := env.Do(http.MethodGet, "/api/v1/store/products?search=bREAD", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var products []models.ProductResponse
		testutil.Decode(t, w, &products)
		require.Len(t, products, 1)
		assert.Equal(t, "Bread", products[0].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		w := env.Do(http.MethodGet, "/api/v1/store/products?page=2&limit=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var products []models.ProductResponse
		resp := testutil.Decode(t, w, &products)
		assert.Len(t, products, 1)
		assert.Equal(t, 2, resp.Meta.TotalPages)
	})
}

func TestProducts_Detail(t *testing.T) {
	env := testutil.Setup(t)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "10.00")

	w := env.Do(http.MethodGet, "/api/v1/store/products/"+product.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.ProductResponse
	testutil.Decode(t, w, &got)
	assert.True(t, got.PriceWithTax.Equal(decimal.RequireFromString("11")), got.PriceWithTax.String())

	w = env.Do(http.MethodGet, "/api/v1/store/products/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProducts_WritesRequireStaff(t *testing.T) {
	env := testutil.Setup(t)
	collection := env.CreateCollection("Grocery")
	_, customerToken := env.CreateUser("jane@example.com", false)
	_, staffToken := env.CreateUser("staff@example.com", true)

	body := map[string]any{
		"title":      "Bread",
		"slug":       "bread",
		"unit_price": "4.99",
		"inventory":  5,
		"collection": collection.ID.String(),
	}

	w := env.Do(http.MethodPost, "/api/v1/store/products", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/store/products", body, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/store/products", body, staffToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.ProductResponse
	testutil.Decode(t, w, &created)
	assert.Equal(t, collection.ID, created.Collection)

	var logs int64
	env.DB.Model(&models.ActivityLog{}).Count(&logs)
	assert.Equal(t, int64(1), logs)
}

func TestProducts_CreateValidation(t *testing.T) {
	env := testutil.Setup(t)
	_, staffToken := env.CreateUser("staff@example.com", true)
	collection := env.CreateCollection("Grocery")

	t.Run("price below one", func(t *testing.T) {
		w := env.Do(http.MethodPost, "/api/v1/store/products", map[string]any{
			"title": "Cheap", "slug": "cheap", "unit_price": "0.50", "collection": collection.ID.String(),
		}, staffToken)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var fields map[string]string
		testutil.Decode(t, w, &fields)
		assert.Contains(t, fields, "unit_price")
	})

	t.Run("unknown collection", func(t *testing.T) {
		w := env.Do(http.MethodPost, "/api/v1/store/products", map[string]any{
			"title": "Bread", "slug": "bread", "unit_price": "4.99", "collection": "018d1234-5678-7abc-def0-123456789abc",
		}, staffToken)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var fields map[string]string
		testutil.Decode(t, w, &fields)
		assert.Contains(t, fields, "collection")
	})
}

func TestProducts_PatchKeepsOtherFields(t *testing.T) {
	env := testutil.Setup(t)
	_, staffToken := env.CreateUser("staff@example.com", true)
	product := env.CreateProduct(env.CreateCollection("Grocery"), "Bread", "4.00")

	w := env.Do(http.MethodPatch, "/api/v1/store/products/"+product.ID.String(), map[string]any{"inventory": 99}, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.ProductResponse
	testutil.Decode(t, w, &got)
	assert.Equal(t, 99, got.Inventory)
	assert.Equal(t, "Bread", got.Title)
}

func TestProducts_DeleteGuard(t *testing.T) {
	env := testutil.Setup(t)
	user, staffToken := env.CreateUser("staff@example.com", true)
	collection := env.CreateCollection("Grocery")
	ordered := env.CreateProduct(collection, "Bread", "4.00")
	unordered := env.CreateProduct(collection, "Coffee", "14.00")
	env.CreateOrder(env.CreateCustomer(user), ordered, 1)

	w := env.Do(http.MethodDelete, "/api/v1/store/products/"+ordered.ID.String(), nil, staffToken)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	resp := testutil.Decode(t, w, nil)
	assert.Equal(t, "Can't delete product as it contains one or more order items.", resp.Message)

	w = env.Do(http.MethodDelete, "/api/v1/store/products/"+unordered.ID.String(), nil, staffToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.Do(http.MethodDelete, fmt.Sprintf("/api/v1/store/products/%s", unordered.ID), nil, staffToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProducts_SearchMatchesWildcardsLiterally(t *testing.T) {
	env := testutil.Setup(t)
	grocery := env.CreateCollection("Grocery")
	env.CreateProduct(grocery, "Cocoa 100%", "6.00")
	env.CreateProduct(grocery, "Dark_Roast", "9.00")
	env.CreateProduct(grocery, "Bread", "4.00")

	cases := []struct {
		search string
		want   string
	}{
		{search: "%25", want: "Cocoa 100%"},
		{search: "_", want: "Dark_Roast"},
	}
	for _, tc := range cases {
		w := env.Do(http.MethodGet, "/api/v1/store/products?search="+tc.search, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var products []models.ProductResponse
		testutil.Decode(t, w, &products)
		require.Len(t, products, 1, "search=%s", tc.search)
		assert.Equal(t, tc.want, products[0].Title)
	}
}

func TestProducts_DeleteClearsFeaturedProduct(t *testing.T) {
	env := testutil.Setup(t)
	_, staffToken := env.CreateUser("staff@example.com", true)
	home := env.CreateCollection("Home")
	lamp := env.CreateProduct(home, "Lamp", "30.00")

	w := env.Do(http.MethodPatch, "/api/v1/store/collections/"+home.ID.String(),
		map[string]any{"title": "Home", "featured_product": lamp.ID}, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.Do(http.MethodDelete, "/api/v1/store/products/"+lamp.ID.String(), nil, staffToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = env.Do(http.MethodGet, "/api/v1/store/collections/"+home.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.CollectionWithCount
	testutil.Decode(t, w, &got)
	assert.Nil(t, got.FeaturedProductID)
	assert.Zero(t, got.ProductsCount)
}

func TestReviews_ScopedToProduct(t *testing.T) {
	env := testutil.Setup(t)
	collection := env.CreateCollection("Grocery")
	bread := env.CreateProduct(collection, "Bread", "4.00")
	coffee := env.CreateProduct(collection, "Coffee", "14.00")
	_, staffToken := env.CreateUser("staff@example.com", true)

	w := env.Do(http.MethodPost, "/api/v1/store/products/"+bread.ID.String()+"/reviews", map[string]any{
		"name": "Jane", "description": "Fresh",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var review models.ReviewResponse
	testutil.Decode(t, w, &review)

	w = env.Do(http.MethodGet, "/api/v1/store/products/"+bread.ID.String()+"/reviews", nil, "")
	var reviews []models.ReviewResponse
	testutil.Decode(t, w, &reviews)
	assert.Len(t, reviews, 1)

	// Looking the review up under another product is a 404
	w = env.Do(http.MethodGet, "/api/v1/store/products/"+coffee.ID.String()+"/reviews/"+review.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.Do(http.MethodDelete, "/api/v1/store/products/"+bread.ID.String()+"/reviews/"+review.ID.String(), nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.Do(http.MethodDelete, "/api/v1/store/products/"+bread.ID.String()+"/reviews/"+review.ID.String(), nil, staffToken)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
