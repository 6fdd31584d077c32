package verifiers

import (
	versvc "offsetledger-backend/internal/application/verifiers"
	"offsetledger-backend/internal/interfaces/handlers/httperr"
	"offsetledger-backend/internal/middleware"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *versvc.Service
}

// POST /api/v1/verifiers
func (h *Handlers) Authorize(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}

	var body struct {
		VerifierID  string `json:"verifier_id"`
		Name        string `json:"name"`
		Credentials string `json:"credentials"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	if err := h.Service.Authorize(c.Context(), body.VerifierID, body.Name, body.Credentials, caller); err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Verifier authorized", fiber.Map{"verifier_id": body.VerifierID}, nil)
}

// POST /api/v1/verifiers/:id/deactivate
func (h *Handlers) Deactivate(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}
	if err := h.Service.Deactivate(c.Context(), c.Params("id"), caller); err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Verifier deactivated", fiber.Map{"verifier_id": c.Params("id")}, nil)
}

// GET /api/v1/verifiers/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	entry, err := h.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Verifier fetched", entry, nil)
}

// GET /api/v1/verifiers/:id/active
func (h *Handlers) IsActive(c *fiber.Ctx) error {
	active, err := h.Service.IsActive(c.Context(), c.Params("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Verifier status fetched", fiber.Map{"active": active}, nil)
}
