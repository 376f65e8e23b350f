package services_test

import (
	"testing"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/repositories"
	"fittrack/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalService(repo repositories.GoalRepository) *services.GoalService {
	return services.NewGoalService(repo, services.StaticProgressCalculator{}, nil)
}

func validGoalInput() services.CreateGoalInput {
	return services.CreateGoalInput{
		Title:    "Run 100km",
		Type:     "running",
		Target:   100,
		Deadline: time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestGoalService_Create(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	goal, err := service.Create("user-1", validGoalInput())
	require.NoError(t, err)
	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, "user-1", goal.UserID)
	assert.Equal(t, "Run 100km", goal.Title)
	assert.Equal(t, float64(100), goal.Target)
	assert.Equal(t, float64(0), goal.Progress)
}

func TestGoalService_CreateValidation(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	zeroTarget := validGoalInput()
	zeroTarget.Target = 0
	_, err := service.Create("user-1", zeroTarget)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "target must be greater than 0")

	noDeadline := validGoalInput()
	noDeadline.Deadline = time.Time{}
	_, err = service.Create("user-1", noDeadline)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	noTitle := validGoalInput()
	noTitle.Title = ""
	_, err = service.Create("user-1", noTitle)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestGoalService_ListEmpty(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	goals, err := service.List("user-with-no-goals")
	assert.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}

func TestGoalService_CreateThenListRoundTrip(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	input := validGoalInput()
	created, err := service.Create("user-1", input)
	require.NoError(t, err)

	goals, err := service.List("user-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, created.ID, goals[0].ID)
	assert.Equal(t, input.Title, goals[0].Title)
	assert.Equal(t, input.Type, goals[0].Type)
	assert.Equal(t, input.Target, goals[0].Target)
	assert.Equal(t, float64(0), goals[0].Progress)
}

func TestGoalService_Update(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	created, err := service.Create("user-1", validGoalInput())
	require.NoError(t, err)

	newTitle := "Run 200km"
	newTarget := 200.0
	updated, err := service.Update(created.ID, services.UpdateGoalInput{
		Title:  &newTitle,
		Target: &newTarget,
	})
	require.NoError(t, err)
	assert.Equal(t, "Run 200km", updated.Title)
	assert.Equal(t, float64(200), updated.Target)
	// Untouched fields survive the merge.
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.Deadline.Unix(), updated.Deadline.Unix())
}

func TestGoalService_UpdateInvalidID(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	_, err := service.Update("not-a-valid-id", services.UpdateGoalInput{})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Invalid goal ID.")
}

func TestGoalService_UpdateNotFound(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	_, err := service.Update(uuid.New().String(), services.UpdateGoalInput{})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Goal not found.")
}

func TestGoalService_Delete(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	created, err := service.Create("user-1", validGoalInput())
	require.NoError(t, err)

	assert.NoError(t, service.Delete(created.ID))

	// Deleting again yields not-found.
	err = service.Delete(created.ID)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	err = service.Delete("malformed")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestGoalService_GetProgressStatic(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	created, err := service.Create("user-1", validGoalInput())
	require.NoError(t, err)

	series, err := service.GetProgress(created.ID)
	require.NoError(t, err)
	assert.Len(t, series.Dates, 3)
	assert.Equal(t, []float64{20, 40, 60}, series.Progress)
}

func TestGoalService_GetProgressErrors(t *testing.T) {
	repo := repositories.NewMockGoalRepository()
	service := newGoalService(repo)

	_, err := service.GetProgress("malformed")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = service.GetProgress(uuid.New().String())
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
