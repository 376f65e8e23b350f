package repositories

import (
	"fmt"
	"sync"
	"time"

	"fittrack/internal/models"

	"github.com/google/uuid"
)

// MockGoalRepository is an in-memory implementation of GoalRepository.
type MockGoalRepository struct {
	goals map[string]models.Goal
	order []string
	mu    sync.RWMutex
}

// NewMockGoalRepository creates a new instance of MockGoalRepository.
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		goals: make(map[string]models.Goal),
	}
}

// Create adds a new goal.
func (r *MockGoalRepository) Create(goal *models.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if _, ok := r.goals[goal.ID]; ok {
		return fmt.Errorf("goal %s: %w", goal.ID, ErrDuplicateKey)
	}
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()
	r.goals[goal.ID] = *goal
	r.order = append(r.order, goal.ID)
	return nil
}

// GetByID returns a goal by its ID.
func (r *MockGoalRepository) GetByID(id string) (*models.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.goals[id]
	if !ok {
		return nil, fmt.Errorf("goal with ID %s: %w", id, ErrNotFound)
	}
	return &goal, nil
}

// GetByUserID returns all goals owned by the user, in insertion order.
func (r *MockGoalRepository) GetByUserID(userID string) ([]models.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goalList := make([]models.Goal, 0)
	for _, id := range r.order {
		if g, ok := r.goals[id]; ok && g.UserID == userID {
			goalList = append(goalList, g)
		}
	}
	return goalList, nil
}

// Update modifies an existing goal.
func (r *MockGoalRepository) Update(goal *models.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[goal.ID]; !ok {
		return fmt.Errorf("goal with ID %s: %w", goal.ID, ErrNotFound)
	}
	goal.UpdatedAt = time.Now()
	r.goals[goal.ID] = *goal
	return nil
}

// Delete removes a goal by its ID.
func (r *MockGoalRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[id]; !ok {
		return fmt.Errorf("goal with ID %s: %w", id, ErrNotFound)
	}
	delete(r.goals, id)
	return nil
}
