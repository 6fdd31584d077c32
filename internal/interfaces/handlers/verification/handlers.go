package verification

import (
	"encoding/json"
	"strconv"

	verifsvc "offsetledger-backend/internal/application/verification"
	"offsetledger-backend/internal/infrastructure/cache"
	"offsetledger-backend/internal/interfaces/handlers/httperr"
	"offsetledger-backend/internal/middleware"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type Handlers struct {
	Service *verifsvc.Service
	Cache   *cache.Snapshots
}

// POST /api/v1/projects/:id/verifications
func (h *Handlers) Verify(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}
	projectID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid project id", fiber.StatusBadRequest, nil)
	}

	var body struct {
		CreditsIssued uint64          `json:"credits_issued"`
		ReportURL     string          `json:"report_url"`
		Methodology   string          `json:"methodology"`
		PeriodStart   int64           `json:"period_start"`
		PeriodEnd     int64           `json:"period_end"`
		Evidence      json.RawMessage `json:"evidence"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	var evidence datatypes.JSON
	if len(body.Evidence) > 0 {
		evidence = datatypes.JSON(body.Evidence)
	}

	seq, err := h.Service.Verify(c.Context(), verifsvc.VerifyInput{
		ProjectID:     projectID,
		CreditsIssued: body.CreditsIssued,
		ReportURL:     body.ReportURL,
		Methodology:   body.Methodology,
		PeriodStart:   body.PeriodStart,
		PeriodEnd:     body.PeriodEnd,
		Evidence:      evidence,
	}, caller)
	if err != nil {
		return httperr.Respond(c, err)
	}
	h.Cache.InvalidateProject(c.Context(), projectID)
	return response.SuccessCreated(c, "Project verified", fiber.Map{
		"project_id": projectID,
		"seq":        seq,
	}, nil)
}

// GET /api/v1/projects/:id/verifications
func (h *Handlers) ListByProject(c *fiber.Ctx) error {
	projectID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid project id", fiber.StatusBadRequest, nil)
	}
	records, err := h.Service.ListByProject(c.Context(), projectID)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Verification records fetched", records, fiber.Map{"total": len(records)})
}

// GET /api/v1/projects/:id/verifications/:seq
func (h *Handlers) Get(c *fiber.Ctx) error {
	projectID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid project id", fiber.StatusBadRequest, nil)
	}
	seq, err := strconv.ParseUint(c.Params("seq"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid sequence number", fiber.StatusBadRequest, nil)
	}
	record, err := h.Service.Get(c.Context(), projectID, seq)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Verification record fetched", record, nil)
}
