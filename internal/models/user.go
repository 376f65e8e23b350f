package models

import "time"

// User represents a registered account. Email is stored lowercase and is
// unique; PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required"`
	Name         string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
