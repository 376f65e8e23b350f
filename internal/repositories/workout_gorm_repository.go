package repositories

import (
	"errors"
	"fmt"

	"fittrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWorkoutRepository is a GORM implementation of WorkoutRepository.
type GORMWorkoutRepository struct {
	db *gorm.DB
}

// NewGORMWorkoutRepository creates a new instance of GORMWorkoutRepository.
func NewGORMWorkoutRepository(db *gorm.DB) *GORMWorkoutRepository {
	return &GORMWorkoutRepository{
		db: db,
	}
}

// Create creates a new workout in the database.
func (r *GORMWorkoutRepository) Create(workout *models.Workout) error {
	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}
	if err := r.db.Create(workout).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("workout %s: %w", workout.ID, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// GetByID retrieves a single workout by its ID from the database.
func (r *GORMWorkoutRepository) GetByID(id string) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.First(&workout, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get workout by ID %s: %w", id, err)
	}
	return &workout, nil
}

// GetByUserID retrieves all workouts logged by the given user, in storage order.
func (r *GORMWorkoutRepository) GetByUserID(userID string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := r.db.Find(&workouts, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get workouts for user %s: %w", userID, err)
	}
	return workouts, nil
}

// Update saves the full workout row.
func (r *GORMWorkoutRepository) Update(workout *models.Workout) error {
	res := r.db.Save(workout)
	if res.Error != nil {
		return fmt.Errorf("failed to update workout: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("workout with ID %s: %w", workout.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a workout by its ID from the database.
func (r *GORMWorkoutRepository) Delete(id string) error {
	res := r.db.Delete(&models.Workout{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete workout: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
