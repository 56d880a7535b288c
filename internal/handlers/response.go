package handlers

import (
	"errors"

	"toko-admin/internal/logging"
	"toko-admin/internal/services"
	"toko-admin/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Plain-text messages shared by several endpoints.
const (
	msgUnauthorized  = "Unauthorized"
	msgInternal      = "Internal error"
	msgInvalidBody   = "Invalid request body"
	msgStoreNotFound = "Toko Tidak Ditemukan"
	msgStoreRequired = "Id Toko Harus Diisi"
)

// respondError maps a service error to its status code. Anything outside
// the known taxonomy is logged under tag and hidden behind a generic 500.
func respondError(c *fiber.Ctx, tag string, err error, notFound string) error {
	var (
		verr *services.ValidationError
		cerr *services.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).SendString(verr.Message)
	case errors.As(err, &cerr):
		return c.Status(fiber.StatusConflict).SendString(cerr.Message)
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).SendString(msgUnauthorized)
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).SendString(msgStoreNotFound)
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString(notFound)
	default:
		logging.Endpoint(tag).WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).SendString(msgInternal)
	}
}

// respondInvalid answers 400 with the message of the first violated field.
func respondInvalid(c *fiber.Ctx, tag string, err error, messages map[string]string) error {
	field, message, ok := validation.First(err, messages)
	if !ok {
		return respondError(c, tag, err, "")
	}
	logging.Endpoint(tag).WithField("field", field).Debug("validation failed")
	return c.Status(fiber.StatusBadRequest).SendString(message)
}

func respondBadBody(c *fiber.Ctx, tag string, err error) error {
	logging.Endpoint(tag).WithError(err).Debug("unparsable request body")
	return c.Status(fiber.StatusBadRequest).SendString(msgInvalidBody)
}

// ErrorHandler renders errors that escaped a handler (unknown routes,
// recovered panics) as plain text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	}
	logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	return c.Status(fiber.StatusInternalServerError).SendString(msgInternal)
}
