package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetOTP is one outstanding reset code for an email. Multiple
// historical rows may exist; issuance deletes the old ones so at most one
// row is live per email.
type PasswordResetOTP struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Email     string         `gorm:"index" json:"email" example:"john.doe@example.com"`
	Code      string         `json:"code" example:"123456"`
	ExpiresAt time.Time      `json:"expires_at" example:"2023-01-01T00:00:00Z"`
}
