package services

import (
	"fmt"
	"sort"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// ProgressCalculator produces a time series of progress values for a goal.
// Implementations can be swapped without changing the progress endpoint's
// contract.
type ProgressCalculator interface {
	Series(goal *models.Goal) (dates []time.Time, progress []float64, err error)
}

// StaticProgressCalculator returns a fixed sample series. It reproduces the
// placeholder behavior the progress endpoint shipped with before real
// workout history was wired in.
type StaticProgressCalculator struct{}

// Series returns three sample points regardless of the goal.
func (StaticProgressCalculator) Series(goal *models.Goal) ([]time.Time, []float64, error) {
	now := time.Now()
	return []time.Time{now, now, now}, []float64{20, 40, 60}, nil
}

// WorkoutProgressCalculator derives the series from the owner's workout
// history: workouts whose type matches the goal's type contribute their
// duration, accumulated in date order as a percentage of the target.
type WorkoutProgressCalculator struct {
	workoutRepo repositories.WorkoutRepository
}

// NewWorkoutProgressCalculator creates a calculator backed by workout history.
func NewWorkoutProgressCalculator(workoutRepo repositories.WorkoutRepository) *WorkoutProgressCalculator {
	return &WorkoutProgressCalculator{workoutRepo: workoutRepo}
}

// Series returns one point per matching workout. Values are unclamped, so a
// goal surpassed by its workouts reports more than 100.
func (c *WorkoutProgressCalculator) Series(goal *models.Goal) ([]time.Time, []float64, error) {
	workouts, err := c.workoutRepo.GetByUserID(goal.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load workout history: %w", err)
	}

	matching := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.Type == goal.Type {
			matching = append(matching, w)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].Date.Before(matching[j].Date)
	})

	dates := make([]time.Time, 0, len(matching))
	progress := make([]float64, 0, len(matching))
	var total float64
	for _, w := range matching {
		total += w.Duration
		dates = append(dates, w.Date)
		progress = append(progress, total/goal.Target*100)
	}
	return dates, progress, nil
}
