package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/repositories"

	"github.com/google/uuid"
)

// CreateGoalInput carries the client-supplied fields for a new goal.
type CreateGoalInput struct {
	Title    string    `json:"title" validate:"required"`
	Type     string    `json:"type" validate:"required"`
	Target   float64   `json:"target" validate:"required,gt=0"`
	Deadline time.Time `json:"deadline" validate:"required"`
}

// UpdateGoalInput is a merge-patch: only non-nil fields are applied.
type UpdateGoalInput struct {
	Title    *string    `json:"title"`
	Type     *string    `json:"type"`
	Target   *float64   `json:"target"`
	Deadline *time.Time `json:"deadline"`
	Progress *float64   `json:"progress"`
}

// ProgressSeries is the response of the goal progress endpoint.
type ProgressSeries struct {
	Dates    []time.Time `json:"dates"`
	Progress []float64   `json:"progress"`
}

// GoalService handles business logic for fitness goals.
type GoalService struct {
	goalRepo   repositories.GoalRepository
	calculator ProgressCalculator
	publisher  EventPublisher
}

// NewGoalService creates a new GoalService. The publisher may be nil to
// disable activity events.
func NewGoalService(goalRepo repositories.GoalRepository, calculator ProgressCalculator, publisher EventPublisher) *GoalService {
	return &GoalService{
		goalRepo:   goalRepo,
		calculator: calculator,
		publisher:  publisher,
	}
}

// Create validates and persists a new goal for the given owner. Progress
// always starts at zero regardless of input.
func (s *GoalService) Create(userID string, input CreateGoalInput) (*models.Goal, error) {
	if userID == "" || input.Title == "" || input.Type == "" || input.Target <= 0 || input.Deadline.IsZero() {
		return nil, apperrors.Validation("All fields are required and target must be greater than 0.")
	}

	goal := &models.Goal{
		UserID:   userID,
		Title:    input.Title,
		Type:     input.Type,
		Target:   input.Target,
		Deadline: input.Deadline,
		Progress: 0,
	}
	if err := s.goalRepo.Create(goal); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.Conflict("Goal already exists.")
		}
		return nil, apperrors.Persistence("Failed to create goal.", err)
	}

	s.publishEvent("goal.created", map[string]interface{}{
		"goalId": goal.ID,
		"userId": goal.UserID,
		"title":  goal.Title,
		"type":   goal.Type,
		"target": goal.Target,
	})

	return goal, nil
}

// List returns all goals owned by the user; an empty slice when none exist.
func (s *GoalService) List(userID string) ([]models.Goal, error) {
	goals, err := s.goalRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch goals.", err)
	}
	return goals, nil
}

// Update applies a partial merge to an existing goal and returns the
// updated record.
func (s *GoalService) Update(goalID string, input UpdateGoalInput) (*models.Goal, error) {
	if err := validateID(goalID, "Invalid goal ID."); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Goal not found.")
		}
		return nil, apperrors.Persistence("Failed to update goal.", err)
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Type != nil {
		goal.Type = *input.Type
	}
	if input.Target != nil {
		goal.Target = *input.Target
	}
	if input.Deadline != nil {
		goal.Deadline = *input.Deadline
	}
	if input.Progress != nil {
		goal.Progress = *input.Progress
	}

	if err := s.goalRepo.Update(goal); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Goal not found.")
		}
		return nil, apperrors.Persistence("Failed to update goal.", err)
	}
	return goal, nil
}

// Delete removes a goal. Repeating the call for the same id yields not-found.
func (s *GoalService) Delete(goalID string) error {
	if err := validateID(goalID, "Invalid goal ID."); err != nil {
		return err
	}

	if err := s.goalRepo.Delete(goalID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Goal not found.")
		}
		return apperrors.Persistence("Failed to delete goal.", err)
	}
	return nil
}

// GetProgress returns a time series of progress values for the goal,
// produced by the configured ProgressCalculator.
func (s *GoalService) GetProgress(goalID string) (*ProgressSeries, error) {
	if err := validateID(goalID, "Invalid goal ID."); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Goal not found.")
		}
		return nil, apperrors.Persistence("Failed to fetch goal progress.", err)
	}

	dates, progress, err := s.calculator.Series(goal)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch goal progress.", err)
	}
	return &ProgressSeries{Dates: dates, Progress: progress}, nil
}

func (s *GoalService) publishEvent(routingKey string, payload map[string]interface{}) {
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

// validateID checks that the id is a well-formed identifier. Parse failure
// is a validation error, distinct from not-found.
func validateID(id, message string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.Validation(message)
	}
	return nil
}
