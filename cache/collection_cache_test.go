package collection_cache

import (
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/stretchr/testify/assert"
)

func TestCollectionListCache(t *testing.T) {
	Invalidate()
	_, ok := GetList()
	assert.False(t, ok)

	SetList([]models.CollectionWithCount{{Title: "Grocery", ProductsCount: 2}})
	list, ok := GetList()
	assert.True(t, ok)
	assert.Len(t, list, 1)

	Invalidate()
	_, ok = GetList()
	assert.False(t, ok)
}
