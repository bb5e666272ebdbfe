package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is anonymous; clients hold on to its UUID.
type Cart struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate hook - auto-generate UUID v4 (cart ids are handed to anonymous clients)
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem is unique per (cart, product).
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate hook - auto-generate UUID v7
func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

// TotalPrice is quantity × unit price; zero when the product is not loaded.
func (ci *CartItem) TotalPrice() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// ═══════════════════════════════════════════════════════════
// Request Models (one per verb)
// ═══════════════════════════════════════════════════════════

// AddCartItemRequest is the POST shape.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
	Quantity  int       `json:"quantity" binding:"required,min=1" example:"1"`
}

// UpdateCartItemRequest is the PATCH shape.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1" example:"3"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type AddCartItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type UpdateCartItemResponse struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ID         uuid.UUID             `json:"id"`
	Product    SimpleProductResponse `json:"product"`
	Quantity   int                   `json:"quantity"`
	TotalPrice decimal.Decimal       `json:"total_price" swaggertype:"string"`
}

type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price" swaggertype:"string"`
}

func (ci *CartItem) ToResponse() CartItemResponse {
	resp := CartItemResponse{
		ID:         ci.ID,
		Quantity:   ci.Quantity,
		TotalPrice: ci.TotalPrice(),
	}
	if ci.Product != nil {
		resp.Product = ci.Product.ToSimpleResponse()
	}
	return resp
}

func (c *Cart) ToResponse() CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	total := decimal.Zero
	for i := range c.Items {
		items = append(items, c.Items[i].ToResponse())
		total = total.Add(c.Items[i].TotalPrice())
	}
	return CartResponse{
		ID:         c.ID,
		Items:      items,
		TotalPrice: total,
	}
}
