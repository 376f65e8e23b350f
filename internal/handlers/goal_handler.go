package handlers

import (
	"fittrack/internal/apperrors"
	"fittrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GoalHandler handles HTTP requests for goals.
type GoalHandler struct {
	service  *services.GoalService
	validate *validator.Validate
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(service *services.GoalService) *GoalHandler {
	return &GoalHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the goal routes with the Fiber app. All of them
// sit behind the auth middleware.
func (h *GoalHandler) RegisterRoutes(router fiber.Router) {
	goalRoutes := router.Group("/goals")
	goalRoutes.Post("/:userId", h.HandleCreateGoal)
	goalRoutes.Get("/:userId", h.HandleGetGoals)
	goalRoutes.Put("/:goalId", h.HandleUpdateGoal)
	goalRoutes.Delete("/:goalId", h.HandleDeleteGoal)
	goalRoutes.Get("/:goalId/progress", h.HandleGetGoalProgress)
}

// HandleCreateGoal creates a new goal for the user named in the path.
func (h *GoalHandler) HandleCreateGoal(c *fiber.Ctx) error {
	var input services.CreateGoalInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("All fields are required and target must be greater than 0.")
	}
	if err := h.validate.Struct(input); err != nil {
		return apperrors.Validation("All fields are required and target must be greater than 0.")
	}

	goal, err := h.service.Create(c.Params("userId"), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

// HandleGetGoals lists all goals owned by the user named in the path.
func (h *GoalHandler) HandleGetGoals(c *fiber.Ctx) error {
	goals, err := h.service.List(c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(goals)
}

// HandleUpdateGoal applies a partial update to a goal.
func (h *GoalHandler) HandleUpdateGoal(c *fiber.Ctx) error {
	var input services.UpdateGoalInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	goal, err := h.service.Update(c.Params("goalId"), input)
	if err != nil {
		return err
	}
	return c.JSON(goal)
}

// HandleDeleteGoal deletes a goal. Success returns 204 with no body.
func (h *GoalHandler) HandleDeleteGoal(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("goalId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetGoalProgress returns the progress time series for a goal.
func (h *GoalHandler) HandleGetGoalProgress(c *fiber.Ctx) error {
	series, err := h.service.GetProgress(c.Params("goalId"))
	if err != nil {
		return err
	}
	return c.JSON(series)
}
