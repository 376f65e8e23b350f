package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// CreateWorkoutInput carries the client-supplied fields for a new workout.
// Distance and CaloriesBurned are optional.
type CreateWorkoutInput struct {
	Date           time.Time `json:"date" validate:"required"`
	Type           string    `json:"type" validate:"required"`
	Duration       float64   `json:"duration" validate:"gte=0"`
	Distance       *float64  `json:"distance" validate:"omitempty,gte=0"`
	CaloriesBurned *float64  `json:"caloriesBurned" validate:"omitempty,gte=0"`
}

// UpdateWorkoutInput is a merge-patch: only non-nil fields are applied.
type UpdateWorkoutInput struct {
	Date           *time.Time `json:"date"`
	Type           *string    `json:"type"`
	Duration       *float64   `json:"duration"`
	Distance       *float64   `json:"distance"`
	CaloriesBurned *float64   `json:"caloriesBurned"`
}

// WorkoutService handles business logic for logged workouts.
type WorkoutService struct {
	workoutRepo repositories.WorkoutRepository
	publisher   EventPublisher
}

// NewWorkoutService creates a new WorkoutService. The publisher may be nil
// to disable activity events.
func NewWorkoutService(workoutRepo repositories.WorkoutRepository, publisher EventPublisher) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		publisher:   publisher,
	}
}

// Create validates and persists a new workout for the given owner.
func (s *WorkoutService) Create(userID string, input CreateWorkoutInput) (*models.Workout, error) {
	if userID == "" || input.Date.IsZero() || input.Type == "" || input.Duration < 0 {
		return nil, apperrors.Validation("All fields are required and duration must be non-negative.")
	}
	if (input.Distance != nil && *input.Distance < 0) || (input.CaloriesBurned != nil && *input.CaloriesBurned < 0) {
		return nil, apperrors.Validation("All fields are required and duration must be non-negative.")
	}

	workout := &models.Workout{
		UserID:         userID,
		Date:           input.Date,
		Type:           input.Type,
		Duration:       input.Duration,
		Distance:       input.Distance,
		CaloriesBurned: input.CaloriesBurned,
	}
	if err := s.workoutRepo.Create(workout); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.Conflict("Workout already exists.")
		}
		return nil, apperrors.Persistence("Failed to create workout.", err)
	}

	s.publishEvent("workout.logged", map[string]interface{}{
		"workoutId": workout.ID,
		"userId":    workout.UserID,
		"type":      workout.Type,
		"duration":  workout.Duration,
	})

	return workout, nil
}

// List returns all workouts logged by the user; an empty slice when none exist.
func (s *WorkoutService) List(userID string) ([]models.Workout, error) {
	workouts, err := s.workoutRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch workouts.", err)
	}
	return workouts, nil
}

// Update applies a partial merge to an existing workout and returns the
// updated record.
func (s *WorkoutService) Update(workoutID string, input UpdateWorkoutInput) (*models.Workout, error) {
	if err := validateID(workoutID, "Invalid workout ID."); err != nil {
		return nil, err
	}

	workout, err := s.workoutRepo.GetByID(workoutID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Workout not found.")
		}
		return nil, apperrors.Persistence("Failed to update workout.", err)
	}

	if input.Date != nil {
		workout.Date = *input.Date
	}
	if input.Type != nil {
		workout.Type = *input.Type
	}
	if input.Duration != nil {
		workout.Duration = *input.Duration
	}
	if input.Distance != nil {
		workout.Distance = input.Distance
	}
	if input.CaloriesBurned != nil {
		workout.CaloriesBurned = input.CaloriesBurned
	}

	if err := s.workoutRepo.Update(workout); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Workout not found.")
		}
		return nil, apperrors.Persistence("Failed to update workout.", err)
	}
	return workout, nil
}

// Delete removes a workout. Repeating the call for the same id yields
// not-found.
func (s *WorkoutService) Delete(workoutID string) error {
	if err := validateID(workoutID, "Invalid workout ID."); err != nil {
		return err
	}

	if err := s.workoutRepo.Delete(workoutID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Workout not found.")
		}
		return apperrors.Persistence("Failed to delete workout.", err)
	}
	return nil
}

func (s *WorkoutService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
