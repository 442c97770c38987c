package handlers

import (
	"ReliefLink/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps domain errors to HTTP status codes: not-found resources,
// forbidden relationships, state-machine violations and concurrency conflicts
// each get their own code so callers can react without parsing messages.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrItemTypeNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequestTransition),
		errors.Is(err, domain.ErrInvalidOfferTransition):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEntryConflict),
		errors.Is(err, domain.ErrLocationCodeTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrSelfReview),
		errors.Is(err, domain.ErrUnauthorizedEntryAccess),
		errors.Is(err, domain.ErrUnauthorizedRequestAccess),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
