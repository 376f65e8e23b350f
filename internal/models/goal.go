package models

import "time"

// Goal represents a fitness goal owned by a user. Progress is stored
// unclamped; clients clamp it to [0,100] for display.
type Goal struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	Title     string    `json:"title" gorm:"type:varchar(255)" validate:"required"`
	Type      string    `json:"type" gorm:"index;type:varchar(100)" validate:"required"`
	Target    float64   `json:"target" validate:"required,gt=0"`
	Deadline  time.Time `json:"deadline" validate:"required"`
	Progress  float64   `json:"progress"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
