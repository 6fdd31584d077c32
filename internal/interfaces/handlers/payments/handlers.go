package payments

import (
	paysvc "offsetledger-backend/internal/application/payments"
	"offsetledger-backend/internal/interfaces/handlers/httperr"
	"offsetledger-backend/internal/middleware"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *paysvc.Service
}

// POST /api/v1/accounts/deposit
func (h *Handlers) Deposit(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}

	var body struct {
		Amount uint64 `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	balance, err := h.Service.Deposit(c.Context(), caller, body.Amount)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Deposit recorded", fiber.Map{"balance": balance}, nil)
}

// GET /api/v1/accounts/balance
func (h *Handlers) Balance(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}
	balance, err := h.Service.Balance(c.Context(), caller)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Balance fetched", fiber.Map{"balance": balance}, nil)
}
