package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler inyectando el caso de uso.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar sectores
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustryListResponse
// @Router       /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Obtener sector por código, con sus empresas
// @Tags         industries
// @Produce      json
// @Param        code  path  string  true  "Código del sector"
// @Success      200  {object}  dto.IndustryDetailBody
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /industries/{code} [get]
func (h *IndustryHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.IndustryDetailBody{Industry: *out})
}

// Create godoc
// @Summary      Crear sector
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndustryRequest  true  "Código y nombre del sector"
// @Success      201  {object}  dto.IndustryBody
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if in.Code == "" || in.Industry == "" {
		return fiber.NewError(fiber.StatusBadRequest, "code and industry are required")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IndustryBody{Industry: *out})
}

// Associate godoc
// @Summary      Asociar una empresa a un sector
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        ind_code  path  string  true  "Código del sector"
// @Param        body      body  dto.AssociateIndustryRequest  true  "Código de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /industries/{ind_code} [put]
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	var in dto.AssociateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if in.CompCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "comp_code is required")
	}
	out, err := h.uc.Associate(c.Context(), c.Params("ind_code"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
