package models

import "time"

// Workout represents a single logged workout session. Distance and
// CaloriesBurned are optional; Duration is in minutes.
type Workout struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID         string    `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	Date           time.Time `json:"date" validate:"required"`
	Type           string    `json:"type" gorm:"type:varchar(100)" validate:"required"`
	Duration       float64   `json:"duration" validate:"gte=0"`
	Distance       *float64  `json:"distance,omitempty" validate:"omitempty,gte=0"`
	CaloriesBurned *float64  `json:"caloriesBurned,omitempty" validate:"omitempty,gte=0"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
