package batches

import (
	"strconv"

	batchsvc "offsetledger-backend/internal/application/batches"
	"offsetledger-backend/internal/infrastructure/cache"
	"offsetledger-backend/internal/interfaces/handlers/httperr"
	"offsetledger-backend/internal/middleware"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *batchsvc.Service
	Cache   *cache.Snapshots
}

// POST /api/v1/batches
func (h *Handlers) Create(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}

	var body struct {
		ProjectID   uint64 `json:"project_id"`
		VintageYear int    `json:"vintage_year"`
		Quantity    uint64 `json:"quantity"`
		UnitPrice   uint64 `json:"unit_price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	id, err := h.Service.Create(c.Context(), batchsvc.CreateInput{
		ProjectID:   body.ProjectID,
		VintageYear: body.VintageYear,
		Quantity:    body.Quantity,
		UnitPrice:   body.UnitPrice,
	}, caller)
	if err != nil {
		return httperr.Respond(c, err)
	}
	h.Cache.InvalidateProject(c.Context(), body.ProjectID)
	return response.SuccessCreated(c, "Batch created", fiber.Map{"batch_id": id}, nil)
}

// GET /api/v1/batches/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid batch id", fiber.StatusBadRequest, nil)
	}
	batch, err := h.Service.Get(c.Context(), id)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Batch fetched", batch, nil)
}

// GET /api/v1/projects/:id/batches
func (h *Handlers) ListByProject(c *fiber.Ctx) error {
	projectID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid project id", fiber.StatusBadRequest, nil)
	}
	out, err := h.Service.ListByProject(c.Context(), projectID)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Batches fetched", out, fiber.Map{"total": len(out)})
}
