package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRate is applied on top of unit_price for price_with_tax.
var TaxRate = decimal.RequireFromString("1.1")

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string          `json:"title" gorm:"type:varchar(255);not null;index"`
	Slug         string          `json:"slug" gorm:"type:varchar(255);not null;index"`
	Description  *string         `json:"description" gorm:"type:text"`
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"type:numeric(6,2);not null"`
	Inventory    int             `json:"inventory" gorm:"not null;default:0"`
	LastUpdate   time.Time       `json:"last_update" gorm:"autoUpdateTime;index"`
	CollectionID uuid.UUID       `json:"collection" gorm:"type:uuid;not null;index:idx_products_collection"`
	Collection   *Collection     `json:"-" gorm:"foreignKey:CollectionID;references:ID;constraint:OnDelete:RESTRICT"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// PriceWithTax is the unit price with TaxRate applied, rounded to cents.
func (p *Product) PriceWithTax() decimal.Decimal {
	return p.UnitPrice.Mul(TaxRate).Round(2)
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// ProductRequest is the full product shape, used by POST and PUT.
type ProductRequest struct {
	Title        string          `json:"title" binding:"required,max=255" example:"Bread Ww Cluster"`
	Slug         string          `json:"slug" binding:"required,max=255" example:"bread-ww-cluster"`
	Description  *string         `json:"description" example:"Fresh whole wheat cluster"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required,gte=1" swaggertype:"string" example:"4.99"`
	Inventory    int             `json:"inventory" binding:"gte=0" example:"20"`
	CollectionID uuid.UUID       `json:"collection" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
}

// UpdateProductRequest is used by PATCH; nil fields are left untouched.
type UpdateProductRequest struct {
	Title        *string          `json:"title" binding:"omitempty,max=255"`
	Slug         *string          `json:"slug" binding:"omitempty,max=255"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unit_price" binding:"omitempty,gte=1" swaggertype:"string"`
	Inventory    *int             `json:"inventory" binding:"omitempty,gte=0"`
	CollectionID *uuid.UUID       `json:"collection"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Slug         string          `json:"slug"`
	Inventory    int             `json:"inventory"`
	UnitPrice    decimal.Decimal `json:"unit_price" swaggertype:"string"`
	PriceWithTax decimal.Decimal `json:"price_with_tax" swaggertype:"string"`
	Collection   uuid.UUID       `json:"collection"`
	LastUpdate   time.Time       `json:"last_update"`
}

// SimpleProductResponse is the product shape nested inside cart and order items.
type SimpleProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Slug:         p.Slug,
		Inventory:    p.Inventory,
		UnitPrice:    p.UnitPrice,
		PriceWithTax: p.PriceWithTax(),
		Collection:   p.CollectionID,
		LastUpdate:   p.LastUpdate,
	}
}

func (p *Product) ToSimpleResponse() SimpleProductResponse {
	return SimpleProductResponse{
		ID:        p.ID,
		Title:     p.Title,
		UnitPrice: p.UnitPrice,
	}
}
