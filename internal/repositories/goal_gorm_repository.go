package repositories

import (
	"errors"
	"fmt"

	"fittrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGoalRepository is a GORM implementation of GoalRepository.
type GORMGoalRepository struct {
	db *gorm.DB
}

// NewGORMGoalRepository creates a new instance of GORMGoalRepository.
func NewGORMGoalRepository(db *gorm.DB) *GORMGoalRepository {
	return &GORMGoalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *GORMGoalRepository) Create(goal *models.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if err := r.db.Create(goal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("goal %s: %w", goal.ID, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves a single goal by its ID from the database.
func (r *GORMGoalRepository) GetByID(id string) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("goal with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get goal by ID %s: %w", id, err)
	}
	return &goal, nil
}

// GetByUserID retrieves all goals owned by the given user, in storage order.
func (r *GORMGoalRepository) GetByUserID(userID string) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := r.db.Find(&goals, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals for user %s: %w", userID, err)
	}
	return goals, nil
}

// Update saves the full goal row. Save updates all fields, including zero
// values, so callers merge partial input before calling.
func (r *GORMGoalRepository) Update(goal *models.Goal) error {
	res := r.db.Save(goal)
	if res.Error != nil {
		return fmt.Errorf("failed to update goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("goal with ID %s: %w", goal.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a goal by its ID from the database.
func (r *GORMGoalRepository) Delete(id string) error {
	res := r.db.Delete(&models.Goal{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("goal with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
