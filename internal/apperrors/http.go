package apperrors

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the single translation point from domain errors to HTTP
// responses. Wire it into fiber.Config. Every failure produces a
// {success:false, error:<message>} body; storage details never leak.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Kind == KindPersistence {
			log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		}
		return c.Status(statusFor(appErr.Kind)).JSON(fiber.Map{
			"success": false,
			"error":   appErr.Message,
		})
	}

	// Fiber's own errors (404 route, 405, body limit) keep their code.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"error":   fiberErr.Message,
		})
	}

	log.Printf("unclassified error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal Server Error",
	})
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindAuth:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
