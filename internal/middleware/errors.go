package middleware

import (
	"errors"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler maps the error taxonomy to status codes and writes the JSON envelope.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, envelope := classify(err)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err),
		}
		if rid, ok := c.Locals("requestid").(string); ok {
			fields = append(fields, zap.String("request_id", rid))
		}
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			fields = append(fields, zap.String("stage", stageErr.Stage))
		}
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Info("request rejected", fields...)
		}

		return c.Status(status).JSON(envelope)
	}
}

func classify(err error) (int, models.Envelope) {
	var (
		validationErr *apperrors.ValidationError
		authnErr      *apperrors.AuthenticationError
		authzErr      *apperrors.AuthorizationError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, models.Envelope{Message: "Invalid request " + validationErr.Source, Errors: validationErr.Details}
	case errors.As(err, &authnErr):
		return fiber.StatusUnauthorized, models.Envelope{Message: "Unauthorized"}
	case errors.As(err, &authzErr):
		return fiber.StatusForbidden, models.Envelope{Message: "Forbidden"}
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound, models.Envelope{Message: "Not found"}
	case errors.Is(err, apperrors.ErrConflict):
		return fiber.StatusConflict, models.Envelope{Message: "Conflict"}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, models.Envelope{Message: fiberErr.Message}
	default:
		// Data-layer details stay in the logs.
		return fiber.StatusInternalServerError, models.Envelope{Message: "Internal server error"}
	}
}
