package product_controller

import (
	"context"
	"errors"
	"strings"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errCollectionNotFound = errors.New("collection not found")

// likeEscaper escapes LIKE wildcards in user search text
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func ensureCollectionExists(ctx context.Context, collectionID uuid.UUID) error {
	var collection models.Collection
	err := config.StoreGorm.WithContext(ctx).Select("id").First(&collection, "id = ?", collectionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errCollectionNotFound
	}
	return err
}
