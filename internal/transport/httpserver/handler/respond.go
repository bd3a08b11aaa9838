// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/transport/httpserver/dto"
)

// respondDomainError maps a service error onto the standard error payload.
// Slug conflicts are caller mistakes (an explicit slug that is taken), so
// they come back as 400 like any other validation failure.
func respondDomainError(c *fiber.Ctx, logger *zap.Logger, err error, action string) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	case domain.IsConflict(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "SLUG_TAKEN",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: action + ": not found",
			Code:  "NOT_FOUND",
		})
	default:
		logger.Error(action+" failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: action + " failed",
			Code:  "INTERNAL_ERROR",
		})
	}
}

func invalidParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: "invalid query parameters",
		Code:  "INVALID_PARAMS",
	})
}

func validationFailed(c *fiber.Ctx, details error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   "validation failed",
		Code:    "VALIDATION_ERROR",
		Details: details,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_BODY",
	})
}

func missingID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: "id is required",
		Code:  "MISSING_ID",
	})
}
