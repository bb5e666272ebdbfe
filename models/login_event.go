package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginEvent is written with raw SQL through the pgx pool; the struct exists
// so the table is part of AutoMigrate.
type LoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	LoggedInAt time.Time `json:"logged_in_at" gorm:"not null;index"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	DeviceType string    `json:"device_type"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
}

func (LoginEvent) TableName() string {
	return "login_events"
}
