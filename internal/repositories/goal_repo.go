package repositories

import "fittrack/internal/models"

// GoalRepository defines the interface for goal data access.
type GoalRepository interface {
	Create(goal *models.Goal) error
	GetByID(id string) (*models.Goal, error)
	GetByUserID(userID string) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id string) error
}
