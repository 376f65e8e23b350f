package repositories

import "fittrack/internal/models"

// WorkoutRepository defines the interface for workout data access.
type WorkoutRepository interface {
	Create(workout *models.Workout) error
	GetByID(id string) (*models.Workout, error)
	GetByUserID(userID string) ([]models.Workout, error)
	Update(workout *models.Workout) error
	Delete(id string) error
}
