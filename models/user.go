package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermViewHistory grants access to the customer history action.
const PermViewHistory = "store.view_history"

// PermissionList is stored as a jsonb array of permission codes.
type PermissionList []string

type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string         `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName    string         `json:"first_name" gorm:"type:varchar(150);not null;default:''"`
	LastName     string         `json:"last_name" gorm:"type:varchar(150);not null;default:''"`
	PasswordHash string         `json:"-" gorm:"type:varchar(255);not null"`
	IsStaff      bool           `json:"is_staff" gorm:"not null;default:false"`
	Permissions  PermissionList `json:"permissions" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// HasPerm reports whether the user holds perm. Staff hold every permission.
func (u *User) HasPerm(perm string) bool {
	return u.IsStaff || slices.Contains(u.Permissions, perm)
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest for account creation
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=72" example:"s3cret-pass"`
	FirstName string `json:"first_name" binding:"max=150" example:"Jane"`
	LastName  string `json:"last_name" binding:"max=150" example:"Doe"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// PermissionList methods
func (p *PermissionList) Scan(value interface{}) error {
	if value == nil {
		*p = make(PermissionList, 0)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan PermissionList")
	}
	return json.Unmarshal(bytes, p)
}

func (p PermissionList) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(p)
}
