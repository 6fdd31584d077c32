// Package httperr maps the ledger's typed failure values onto HTTP status
// codes for the handler layer.
package httperr

import (
	"errors"

	"offsetledger-backend/internal/domain"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

var statusByErr = []struct {
	err  error
	code int
}{
	{domain.ErrProjectNotFound, fiber.StatusNotFound},
	{domain.ErrBatchNotFound, fiber.StatusNotFound},
	{domain.ErrRetirementNotFound, fiber.StatusNotFound},
	{domain.ErrVerifierNotFound, fiber.StatusNotFound},
	{domain.ErrAccountNotFound, fiber.StatusNotFound},

	{domain.ErrNotAdmin, fiber.StatusForbidden},
	{domain.ErrNotOwner, fiber.StatusForbidden},
	{domain.ErrNotAuthorizedVerifier, fiber.StatusForbidden},
	{domain.ErrSelfAuthorization, fiber.StatusForbidden},

	{domain.ErrEmptyField, fiber.StatusBadRequest},
	{domain.ErrInvalidCategory, fiber.StatusBadRequest},
	{domain.ErrInvalidDateRange, fiber.StatusBadRequest},
	{domain.ErrInvalidPeriod, fiber.StatusBadRequest},
	{domain.ErrZeroCredits, fiber.StatusBadRequest},
	{domain.ErrInvalidQuantity, fiber.StatusBadRequest},
	{domain.ErrInvalidPrice, fiber.StatusBadRequest},
	{domain.ErrInvalidVintage, fiber.StatusBadRequest},
	{domain.ErrEmptyReason, fiber.StatusBadRequest},
	{domain.ErrEmptyURL, fiber.StatusBadRequest},
	{domain.ErrSelfBeneficiary, fiber.StatusBadRequest},

	{domain.ErrProjectNotPending, fiber.StatusConflict},
	{domain.ErrProjectNotVerified, fiber.StatusConflict},
	{domain.ErrProjectInactive, fiber.StatusConflict},
	{domain.ErrBatchNotAvailable, fiber.StatusConflict},
	{domain.ErrInsufficientCredits, fiber.StatusConflict},
	{domain.ErrInsufficientRemaining, fiber.StatusConflict},
	{domain.ErrNoHolding, fiber.StatusConflict},
	{domain.ErrInsufficientBalance, fiber.StatusConflict},
	{domain.ErrCertificateAlreadySet, fiber.StatusConflict},

	{domain.ErrPaymentFailed, fiber.StatusPaymentRequired},
	{domain.ErrInsufficientFunds, fiber.StatusPaymentRequired},
}

// StatusOf returns the HTTP status for a service error, 500 when unknown.
func StatusOf(err error) int {
	for _, e := range statusByErr {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return fiber.StatusInternalServerError
}

// Respond writes the standard error envelope for a service error. Unknown
// errors are masked as Internal Server Error.
func Respond(c *fiber.Ctx, err error) error {
	code := StatusOf(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		msg = "Internal Server Error"
	}
	return response.Error(c, msg, code, nil)
}
