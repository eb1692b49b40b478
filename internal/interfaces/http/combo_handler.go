package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/usecase"
)

// ComboHandler combos de temporada.
type ComboHandler struct {
	uc *usecase.ComboUseCase
}

func NewComboHandler(uc *usecase.ComboUseCase) *ComboHandler {
	return &ComboHandler{uc: uc}
}

// Create godoc
// @Summary      Crear combo
// @Tags         combos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateComboRequest  true  "Combo con sus componentes"
// @Success      201   {object}  dto.ComboResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/combos [post]
func (h *ComboHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateComboRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/v1/combos/:id
func (h *ComboHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/v1/combos?todos=true incluye inactivos.
func (h *ComboHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), !c.QueryBool("todos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Toggle POST /api/v1/combos/:id/toggle
func (h *ComboHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
