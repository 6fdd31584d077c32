package credits

import (
	"strconv"

	credsvc "offsetledger-backend/internal/application/credits"
	"offsetledger-backend/internal/interfaces/handlers/httperr"
	"offsetledger-backend/internal/middleware"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *credsvc.Service
}

// POST /api/v1/credits/purchase
func (h *Handlers) Purchase(c *fiber.Ctx) error {
	buyer := middleware.GetAccount(c)
	if buyer == "" {
		return response.Unauthorized(c, "Account identity required")
	}

	var body struct {
		BatchID  uint64 `json:"batch_id"`
		Quantity uint64 `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	if err := h.Service.Purchase(c.Context(), body.BatchID, body.Quantity, buyer); err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Credits purchased", fiber.Map{
		"batch_id": body.BatchID,
		"quantity": body.Quantity,
	}, nil)
}

// POST /api/v1/credits/transfer
func (h *Handlers) Transfer(c *fiber.Ctx) error {
	sender := middleware.GetAccount(c)
	if sender == "" {
		return response.Unauthorized(c, "Account identity required")
	}

	var body struct {
		ProjectID   uint64 `json:"project_id"`
		VintageYear int    `json:"vintage_year"`
		Recipient   string `json:"recipient"`
		Quantity    uint64 `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if body.Recipient == "" {
		return response.Error(c, "recipient is required", fiber.StatusBadRequest, nil)
	}

	if err := h.Service.Transfer(c.Context(), body.ProjectID, body.VintageYear, body.Recipient, body.Quantity, sender); err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Credits transferred", fiber.Map{
		"recipient": body.Recipient,
		"quantity":  body.Quantity,
	}, nil)
}

// GET /api/v1/credits/balance?project_id=&vintage_year=&holder=
func (h *Handlers) Balance(c *fiber.Ctx) error {
	holder := c.Query("holder")
	if holder == "" {
		holder = middleware.GetAccount(c)
	}
	if holder == "" {
		return response.Unauthorized(c, "Account identity required")
	}
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid project id", fiber.StatusBadRequest, nil)
	}
	vintage, err := strconv.Atoi(c.Query("vintage_year"))
	if err != nil {
		return response.Error(c, "Invalid vintage year", fiber.StatusBadRequest, nil)
	}

	balance, err := h.Service.Balance(c.Context(), holder, projectID, vintage)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Balance fetched", fiber.Map{
		"holder":       holder,
		"project_id":   projectID,
		"vintage_year": vintage,
		"balance":      balance,
	}, nil)
}

// GET /api/v1/credits/holdings
func (h *Handlers) Holdings(c *fiber.Ctx) error {
	holder := middleware.GetAccount(c)
	if holder == "" {
		return response.Unauthorized(c, "Account identity required")
	}
	holdings, err := h.Service.ListHoldings(c.Context(), holder)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Holdings fetched", holdings, fiber.Map{"total": len(holdings)})
}
