package retirements

import (
	"strconv"

	retsvc "offsetledger-backend/internal/application/retirements"
	"offsetledger-backend/internal/infrastructure/cache"
	"offsetledger-backend/internal/interfaces/handlers/httperr"
	"offsetledger-backend/internal/middleware"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *retsvc.Service
	Cache   *cache.Snapshots
}

// POST /api/v1/retirements
func (h *Handlers) Retire(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}

	var body struct {
		ProjectID   uint64  `json:"project_id"`
		VintageYear int     `json:"vintage_year"`
		Quantity    uint64  `json:"quantity"`
		Reason      string  `json:"reason"`
		Beneficiary *string `json:"beneficiary"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	id, err := h.Service.Retire(c.Context(), retsvc.RetireInput{
		ProjectID:   body.ProjectID,
		VintageYear: body.VintageYear,
		Quantity:    body.Quantity,
		Reason:      body.Reason,
		Beneficiary: body.Beneficiary,
	}, caller)
	if err != nil {
		return httperr.Respond(c, err)
	}
	h.Cache.InvalidateProject(c.Context(), body.ProjectID)
	return response.SuccessCreated(c, "Credits retired", fiber.Map{"retirement_id": id}, nil)
}

// POST /api/v1/retirements/:id/certificate
func (h *Handlers) IssueCertificate(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid retirement id", fiber.StatusBadRequest, nil)
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	if err := h.Service.IssueCertificate(c.Context(), id, body.URL, caller); err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Certificate issued", fiber.Map{
		"retirement_id":   id,
		"certificate_url": body.URL,
	}, nil)
}

// GET /api/v1/retirements/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid retirement id", fiber.StatusBadRequest, nil)
	}
	record, err := h.Service.Get(c.Context(), id)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Retirement record fetched", record, nil)
}

// GET /api/v1/retirements
func (h *Handlers) ListByAccount(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}
	records, err := h.Service.ListByAccount(c.Context(), caller)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Retirement records fetched", records, fiber.Map{"total": len(records)})
}
