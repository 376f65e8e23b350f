package repositories

import (
	"fmt"
	"sync"
	"time"

	"fittrack/internal/models"

	"github.com/google/uuid"
)

// MockWorkoutRepository is an in-memory implementation of WorkoutRepository.
type MockWorkoutRepository struct {
	workouts map[string]models.Workout
	order    []string
	mu       sync.RWMutex
}

// NewMockWorkoutRepository creates a new instance of MockWorkoutRepository.
func NewMockWorkoutRepository() *MockWorkoutRepository {
	return &MockWorkoutRepository{
		workouts: make(map[string]models.Workout),
	}
}

// Create adds a new workout.
func (r *MockWorkoutRepository) Create(workout *models.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}
	if _, ok := r.workouts[workout.ID]; ok {
		return fmt.Errorf("workout %s: %w", workout.ID, ErrDuplicateKey)
	}
	workout.CreatedAt = time.Now()
	workout.UpdatedAt = time.Now()
	r.workouts[workout.ID] = *workout
	r.order = append(r.order, workout.ID)
	return nil
}

// GetByID returns a workout by its ID.
func (r *MockWorkoutRepository) GetByID(id string) (*models.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workout, ok := r.workouts[id]
	if !ok {
		return nil, fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	return &workout, nil
}

// GetByUserID returns all workouts logged by the user, in insertion order.
func (r *MockWorkoutRepository) GetByUserID(userID string) ([]models.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workoutList := make([]models.Workout, 0)
	for _, id := range r.order {
		if w, ok := r.workouts[id]; ok && w.UserID == userID {
			workoutList = append(workoutList, w)
		}
	}
	return workoutList, nil
}

// Update modifies an existing workout.
func (r *MockWorkoutRepository) Update(workout *models.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[workout.ID]; !ok {
		return fmt.Errorf("workout with ID %s: %w", workout.ID, ErrNotFound)
	}
	workout.UpdatedAt = time.Now()
	r.workouts[workout.ID] = *workout
	return nil
}

// Delete removes a workout by its ID.
func (r *MockWorkoutRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[id]; !ok {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	delete(r.workouts, id)
	return nil
}
