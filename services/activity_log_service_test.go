package services_test

import (
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogActivity(t *testing.T) {
	env := testutil.Setup(t)
	user, _ := env.CreateUser("staff@example.com", true)
	productID := uuid.NewString()

	services.LogActivity(services.LogActivityRequest{
		UserID:       uuid.Nil,
		Action:       "deleted_product",
		ResourceType: models.ResourceTypeProduct,
		ResourceID:   productID,
	})

	var count int64
	require.NoError(t, env.DB.Model(&models.ActivityLog{}).Count(&count).Error)
	assert.Zero(t, count, "entries without a user are skipped")

	services.LogActivity(services.LogActivityRequest{
		UserID:       user.ID,
		UserEmail:    user.Email,
		Action:       "deleted_product",
		ResourceType: models.ResourceTypeProduct,
		ResourceID:   productID,
		Changes:      services.CreateChanges(map[string]string{"title": "Bread"}),
		StatusCode:   204,
	})

	var entry models.ActivityLog
	require.NoError(t, env.DB.First(&entry).Error)
	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, productID, entry.ResourceID)
	assert.Equal(t, models.StatusSuccess, entry.Status)
	assert.JSONEq(t, `{"before":{"title":"Bread"}}`, string(entry.Changes))
}
