package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MembershipBronze = "B"
	MembershipSilver = "S"
	MembershipGold   = "G"
)

// Customer is the store profile attached one-to-one to a user account.
type Customer struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Phone      string          `json:"phone" gorm:"type:varchar(255);not null;default:''"`
	BirthDate  *datatypes.Date `json:"birth_date" gorm:"type:date"`
	Membership string          `json:"membership" gorm:"type:varchar(1);not null;default:'B'"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate hook - auto-generate UUID v7 and default membership
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.Membership == "" {
		c.Membership = MembershipBronze
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerRequest is the full customer shape (POST, PUT and PUT /me).
// UserID is only honoured for staff callers.
type CustomerRequest struct {
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Phone      string     `json:"phone" binding:"required,max=255" example:"+1-555-0100"`
	BirthDate  *string    `json:"birth_date" binding:"omitempty,datetime=2006-01-02" example:"1990-04-21"`
	Membership string     `json:"membership" binding:"omitempty,membership" example:"B"`
}

// UpdateCustomerRequest is the PATCH shape.
type UpdateCustomerRequest struct {
	Phone      *string `json:"phone" binding:"omitempty,max=255"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Membership *string `json:"membership" binding:"omitempty,membership"`
}

type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Phone      string    `json:"phone"`
	BirthDate  *string   `json:"birth_date"`
	Membership string    `json:"membership"`
}

func (c *Customer) ToResponse() CustomerResponse {
	var birthDate *string
	if c.BirthDate != nil {
		formatted := time.Time(*c.BirthDate).Format(time.DateOnly)
		birthDate = &formatted
	}
	return CustomerResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Phone:      c.Phone,
		BirthDate:  birthDate,
		Membership: c.Membership,
	}
}

// ParseBirthDate converts the wire format into a column value. Empty clears it.
func ParseBirthDate(value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *value)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
