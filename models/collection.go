package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection groups products. FeaturedProductID is a plain column; declaring
// the association would make collections and products depend on each other
// during migration.
type Collection struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title             string     `json:"title" gorm:"type:varchar(255);not null"`
	FeaturedProductID *uuid.UUID `json:"featured_product,omitempty" gorm:"type:uuid;index"`

	Products []Product `json:"-" gorm:"foreignKey:CollectionID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Collection) TableName() string {
	return "collections"
}

// CollectionRequest is used by POST, PUT and PATCH.
type CollectionRequest struct {
	Title             string     `json:"title" binding:"required,max=255" example:"Beauty"`
	FeaturedProductID *uuid.UUID `json:"featured_product,omitempty"`
}

// CollectionWithCount is a collection row annotated with its product count.
type CollectionWithCount struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	FeaturedProductID *uuid.UUID `json:"featured_product,omitempty"`
	ProductsCount     int        `json:"products_count"`
}
