package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"travel-cms/model"
)

func RaiseError(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(fiber.Map{"error": message})
}

func RaisePermissionsError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusUnauthorized, message)
}

func RaiseInternalServerError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusInternalServerError, message)
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message)
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message)
}

func RaiseConflictError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusConflict, message)
}

// StatusOf maps domain errors onto HTTP status codes.
func StatusOf(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.Is(err, model.ErrValidation):
		return fiber.StatusBadRequest
	case stderrors.Is(err, model.ErrNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, model.ErrDuplicateKey):
		return fiber.StatusConflict
	case stderrors.Is(err, model.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case stderrors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// Raise answers with the status StatusOf picks and the error text. A
// duplicate key answers with the field-specific message alone.
func Raise(context *fiber.Ctx, err error) error {
	var dup *model.DuplicateKeyError
	if stderrors.As(err, &dup) {
		return RaiseConflictError(context, dup.Error())
	}
	return RaiseError(context, StatusOf(err), err.Error())
}
