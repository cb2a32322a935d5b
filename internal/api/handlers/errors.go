package handlers

import (
	"errors"

	"investr/internal/service"
	"investr/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// userMessage turns err into the status and message shown to the user.
func userMessage(err error) (int, string) {
	var upstreamErr *service.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		return fiber.StatusBadGateway, upstreamErr.Message
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway, "The service is unavailable. Please try again."
	case errors.Is(err, service.ErrMalformedResponse):
		return fiber.StatusBadGateway, "Something went wrong. Please try again."
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrCustomRateRequired),
		errors.Is(err, service.ErrRateUndetermined):
		return fiber.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, service.ErrUnknownField):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusNotFound, "Session not found"
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

func writeError(c *fiber.Ctx, logger *zap.Logger, msg string, err error) error {
	code, text := userMessage(err)
	if code >= fiber.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Warn(msg, zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{
		"error": text,
	})
}

func badRequest(c *fiber.Ctx, text string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": text,
	})
}
