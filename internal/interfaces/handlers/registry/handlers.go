package registry

import (
	"strconv"

	regsvc "offsetledger-backend/internal/application/registry"
	"offsetledger-backend/internal/domain"
	"offsetledger-backend/internal/infrastructure/cache"
	"offsetledger-backend/internal/interfaces/handlers/httperr"
	"offsetledger-backend/internal/middleware"
	"offsetledger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *regsvc.Service
	Cache   *cache.Snapshots
}

// POST /api/v1/projects
func (h *Handlers) Register(c *fiber.Ctx) error {
	caller := middleware.GetAccount(c)
	if caller == "" {
		return response.Unauthorized(c, "Account identity required")
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Category    string `json:"category"`
		StartAt     int64  `json:"start_at"`
		EndAt       int64  `json:"end_at"`
		RegistryURL string `json:"registry_url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	id, err := h.Service.Register(c.Context(), regsvc.RegisterInput{
		Name:        body.Name,
		Description: body.Description,
		Location:    body.Location,
		Category:    domain.Category(body.Category),
		StartAt:     body.StartAt,
		EndAt:       body.EndAt,
		RegistryURL: body.RegistryURL,
	}, caller)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.SuccessCreated(c, "Project registered", fiber.Map{"project_id": id}, nil)
}

// GET /api/v1/projects/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "Invalid project id", fiber.StatusBadRequest, nil)
	}

	if p := h.Cache.GetProject(c.Context(), id); p != nil {
		return response.Success(c, "Project fetched", p, fiber.Map{"cached": true})
	}

	project, err := h.Service.Get(c.Context(), id)
	if err != nil {
		return httperr.Respond(c, err)
	}
	h.Cache.SetProject(c.Context(), project)
	return response.Success(c, "Project fetched", project, nil)
}

// GET /api/v1/projects?status=
func (h *Handlers) List(c *fiber.Ctx) error {
	var status *domain.ProjectStatus
	if q := c.Query("status"); q != "" {
		s := domain.ProjectStatus(q)
		status = &s
	}
	projects, err := h.Service.List(c.Context(), status)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return response.Success(c, "Projects fetched", projects, fiber.Map{"total": len(projects)})
}
