package handlers

import (
	"fittrack/internal/apperrors"
	"fittrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WorkoutHandler handles HTTP requests for workouts.
type WorkoutHandler struct {
	service  *services.WorkoutService
	validate *validator.Validate
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(service *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the workout routes with the Fiber app. All of
// them sit behind the auth middleware.
func (h *WorkoutHandler) RegisterRoutes(router fiber.Router) {
	workoutRoutes := router.Group("/workouts")
	workoutRoutes.Post("/:userId", h.HandleCreateWorkout)
	workoutRoutes.Get("/:userId", h.HandleGetWorkouts)
	workoutRoutes.Put("/:workoutId", h.HandleUpdateWorkout)
	workoutRoutes.Delete("/:workoutId", h.HandleDeleteWorkout)
}

// HandleCreateWorkout logs a new workout for the user named in the path.
func (h *WorkoutHandler) HandleCreateWorkout(c *fiber.Ctx) error {
	var input services.CreateWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("All fields are required and duration must be non-negative.")
	}
	if err := h.validate.Struct(input); err != nil {
		return apperrors.Validation("All fields are required and duration must be non-negative.")
	}

	workout, err := h.service.Create(c.Params("userId"), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// HandleGetWorkouts lists all workouts logged by the user named in the path.
func (h *WorkoutHandler) HandleGetWorkouts(c *fiber.Ctx) error {
	workouts, err := h.service.List(c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(workouts)
}

// HandleUpdateWorkout applies a partial update to a workout.
func (h *WorkoutHandler) HandleUpdateWorkout(c *fiber.Ctx) error {
	var input services.UpdateWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	workout, err := h.service.Update(c.Params("workoutId"), input)
	if err != nil {
		return err
	}
	return c.JSON(workout)
}

// HandleDeleteWorkout deletes a workout. Success returns 204 with no body.
func (h *WorkoutHandler) HandleDeleteWorkout(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("workoutId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
