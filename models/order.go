package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "P"
	PaymentStatusComplete = "C"
	PaymentStatusFailed   = "F"
)

// Order represents a placed customer order
type Order struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID   `json:"customer_id" gorm:"type:uuid;not null;index:idx_orders_customer"`
	PlacedAt      time.Time   `json:"placed_at" gorm:"autoCreateTime;index"`
	PaymentStatus string      `json:"payment_status" gorm:"type:varchar(1);not null;default:'P'"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentStatusPending
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a product line frozen at checkout price.
type OrderItem struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index:idx_order_items_order"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index:idx_order_items_product"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:numeric(6,2);not null"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ═══════════════════════════════════════════════════════════
// Request Models (one per verb)
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest is the checkout shape.
type CreateOrderRequest struct {
	CartID uuid.UUID `json:"cart_id" binding:"required" example:"6f1c1a4e-1f7e-4b59-9a55-5bde0c3f6a11"`
}

type UpdateOrderRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,payment_status" example:"C"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type OrderItemResponse struct {
	ID        uuid.UUID             `json:"id"`
	Product   SimpleProductResponse `json:"product"`
	UnitPrice decimal.Decimal       `json:"unit_price" swaggertype:"string"`
	Quantity  int                   `json:"quantity"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    uuid.UUID           `json:"customer_id"`
	PlacedAt      time.Time           `json:"placed_at"`
	PaymentStatus string              `json:"payment_status"`
	Items         []OrderItemResponse `json:"items"`
}

type UpdateOrderResponse struct {
	PaymentStatus string `json:"payment_status"`
}

func (oi *OrderItem) ToResponse() OrderItemResponse {
	resp := OrderItemResponse{
		ID:        oi.ID,
		UnitPrice: oi.UnitPrice,
		Quantity:  oi.Quantity,
	}
	if oi.Product != nil {
		resp.Product = oi.Product.ToSimpleResponse()
	}
	return resp
}

func (o *Order) ToResponse() OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, o.Items[i].ToResponse())
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PlacedAt:      o.PlacedAt,
		PaymentStatus: o.PaymentStatus,
		Items:         items,
	}
}

// Total sums unit_price × quantity over the order lines.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
