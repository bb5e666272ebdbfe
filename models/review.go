package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index:idx_reviews_product"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Date        time.Time `json:"date" gorm:"autoCreateTime"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewRequest never carries a product id; it always comes from the URL.
type ReviewRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"Jane"`
	Description string `json:"description" binding:"required" example:"Great product"`
}

type UpdateReviewRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		Date:        r.Date,
		Name:        r.Name,
		Description: r.Description,
	}
}
