package store_routes_test

import (
	"net/http"
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollections_ListCountsProducts(t *testing.T) {
	env := testutil.Setup(t)
	grocery := env.CreateCollection("Grocery")
	env.CreateCollection("Empty")
	env.CreateProduct(grocery, "Bread", "4.00")
	env.CreateProduct(grocery, "Coffee", "14.00")

	w := env.Do(http.MethodGet, "/api/v1/store/collections", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var collections []models.CollectionWithCount
	testutil.Decode(t, w, &collections)
	require.Len(t, collections, 2)

	counts := map[string]int{}
	for _, c := range collections {
		counts[c.Title] = c.ProductsCount
	}
	assert.Equal(t, 2, counts["Grocery"])
	assert.Equal(t, 0, counts["Empty"])
}

func TestCollections_CacheInvalidatedByProductWrites(t *testing.T) {
	env := testutil.Setup(t)
	_, staffToken := env.CreateUser("staff@example.com", true)
	grocery := env.CreateCollection("Grocery")

	// Prime the cache
	w := env.Do(http.MethodGet, "/api/v1/store/collections", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/store/products", map[string]any{
		"title": "Bread", "slug": "bread", "unit_price": "4.00", "collection": grocery.ID.String(),
	}, staffToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.Do(http.MethodGet, "/api/v1/store/collections", nil, "")
	var collections []models.CollectionWithCount
	testutil.Decode(t, w, &collections)
	require.Len(t, collections, 1)
	assert.Equal(t, 1, collections[0].ProductsCount)
}

func TestCollections_CreateAndUpdate(t *testing.T) {
	env := testutil.Setup(t)
	_, staffToken := env.CreateUser("staff@example.com", true)

	w := env.Do(http.MethodPost, "/api/v1/store/collections", map[string]any{"title": "Beauty"}, staffToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.CollectionWithCount
	testutil.Decode(t, w, &created)
	assert.Equal(t, "Beauty", created.Title)
	assert.Zero(t, created.ProductsCount)

	w = env.Do(http.MethodPatch, "/api/v1/store/collections/"+created.ID.String(), map[string]any{"title": "Cosmetics"}, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.CollectionWithCount
	testutil.Decode(t, w, &updated)
	assert.Equal(t, "Cosmetics", updated.Title)

	w = env.Do(http.MethodPost, "/api/v1/store/collections", map[string]any{}, staffToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollections_FeaturedProductPutVersusPatch(t *testing.T) {
	env := testutil.Setup(t)
	_, staffToken := env.CreateUser("staff@example.com", true)
	home := env.CreateCollection("Home")
	lamp := env.CreateProduct(home, "Lamp", "30.00")
	path := "/api/v1/store/collections/" + home.ID.String()

	w := env.Do(http.MethodPut, path, map[string]any{"title": "Home", "featured_product": lamp.ID}, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// PATCH without featured_product keeps it
	w = env.Do(http.MethodPatch, path, map[string]any{"title": "Living"}, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var patched models.CollectionWithCount
	testutil.Decode(t, w, &patched)
	require.NotNil(t, patched.FeaturedProductID)
	assert.Equal(t, lamp.ID, *patched.FeaturedProductID)

	// PUT replaces the whole shape, so a null clears it
	w = env.Do(http.MethodPut, path, map[string]any{"title": "Living", "featured_product": nil}, staffToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var replaced models.CollectionWithCount
	testutil.Decode(t, w, &replaced)
	assert.Nil(t, replaced.FeaturedProductID)
}

func TestCollections_DeleteGuard(t *testing.T) {
	env := testutil.Setup(t)
	_, staffToken := env.CreateUser("staff@example.com", true)
	grocery := env.CreateCollection("Grocery")
	empty := env.CreateCollection("Empty")
	env.CreateProduct(grocery, "Bread", "4.00")

	w := env.Do(http.MethodDelete, "/api/v1/store/collections/"+grocery.ID.String(), nil, staffToken)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	resp := testutil.Decode(t, w, nil)
	assert.Equal(t, "Can't delete collection as it contains one or more products.", resp.Message)

	w = env.Do(http.MethodDelete, "/api/v1/store/collections/"+empty.ID.String(), nil, staffToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.Do(http.MethodGet, "/api/v1/store/collections/"+empty.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
