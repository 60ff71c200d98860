package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hubber-api/internal/application/dto"
	"github.com/jhoicas/hubber-api/internal/application/usecase"
)

// PortalHandler maneja las rutas públicas del portal de empresas. Por diseño no
// exige identidad: respaldan la página compartible de cada empresa.
type PortalHandler struct {
	companies *usecase.CompanyUseCase
	jobs      *usecase.JobUseCase
}

// NewPortalHandler construye el handler.
func NewPortalHandler(companies *usecase.CompanyUseCase, jobs *usecase.JobUseCase) *PortalHandler {
	return &PortalHandler{companies: companies, jobs: jobs}
}

// GetByPublicID godoc
// @Summary      Portal público por identificador público
// @Tags         public
// @Produce      json
// @Param        publicId  path  string  true  "Identificador público"
// @Success      200  {object}  dto.PublicCompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/{publicId} [get]
func (h *PortalHandler) GetByPublicID(c *fiber.Ctx) error {
	publicID := c.Params("publicId")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "publicId es requerido"})
	}
	out, err := h.companies.GetByPublicID(c.Context(), publicID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetCompany godoc
// @Summary      Vista pública de empresa por id interno
// @Tags         public
// @Produce      json
// @Param        id  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.PublicCompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/company [get]
func (h *PortalHandler) GetCompany(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.companies.GetPublicByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListJobs godoc
// @Summary      Trabajos públicos de una empresa
// @Tags         public
// @Produce      json
// @Param        company_id  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.JobListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/jobs [get]
func (h *PortalHandler) ListJobs(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY_ID", Message: "company_id es requerido"})
	}
	out, err := h.jobs.ListPublic(c.Context(), companyID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
