package collection_cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/models"
)

const TTL = 5 * time.Minute

// ── Collection list cache ────────────────────────────────────────────────────
// Holds every collection with products_count annotated. The list endpoint
// reads from here; any collection or product write invalidates it.

type listEntry struct {
	data      []models.CollectionWithCount
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetList() ([]models.CollectionWithCount, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && time.Since(listCache.fetchedAt) < TTL {
		return listCache.data, true
	}
	return nil, false
}

func SetList(data []models.CollectionWithCount) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached list (call on collection create/update/delete
// and on product writes, which move product counts).
func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()
}
