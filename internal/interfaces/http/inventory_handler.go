package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/inventory"
)

const wasteDefaultDays = 30

// InventoryHandler maneja insumos, movimientos y reportes de inventario.
type InventoryHandler struct {
	movements     *inventory.RegisterMovementUseCase
	ingredients   *inventory.IngredientUseCase
	replenishment *inventory.ReplenishmentUseCase
	loc           *time.Location
}

// NewInventoryHandler construye el handler. loc interpreta las fechas de los filtros.
func NewInventoryHandler(
	movements *inventory.RegisterMovementUseCase,
	ingredients *inventory.IngredientUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	loc *time.Location,
) *InventoryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &InventoryHandler{movements: movements, ingredients: ingredients, replenishment: replenishment, loc: loc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de insumos
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "tipo (ENTRADA|MERMA|COCCION|SALIDA), items"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.movements.RegisterMovementFromRequest(c.Context(), GetBranchID(c), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual de existencia (+/-)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.AdjustStockRequest  true  "delta distinto de cero"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/items/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	branchID := in.BranchID
	if branchID == "" {
		branchID = GetBranchID(c)
	}
	id := c.Params("id")
	if _, err := h.movements.AdjustStock(c.Context(), id, branchID, userID, in.Delta); err != nil {
		return respondError(c, err)
	}
	out, err := h.ingredients.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateItem POST /api/v1/inventory/items
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ingredients.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem PUT /api/v1/inventory/items/:id
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ingredients.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetItem GET /api/v1/inventory/items/:id
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.ingredients.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems GET /api/v1/inventory/items
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.ingredients.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte de inventario con valorización y alertas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReportDTO
// @Router       /api/v1/inventory/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	out, err := h.ingredients.Report(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Waste godoc
// @Summary      Merma por insumo en un período
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "YYYY-MM-DD (default: hace 30 días)"
// @Param        hasta  query  string  false  "YYYY-MM-DD inclusive (default: hoy)"
// @Success      200  {array}   dto.WasteDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/waste [get]
func (h *InventoryHandler) Waste(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c, h.loc, time.Now(), wasteDefaultDays)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.ingredients.Waste(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición de insumos
// @Description  Insumos en estado crítico o bajo con la cantidad sugerida para volver al nivel ideal,
//
//	ordenados por prioridad y merma reciente.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":        len(list),
		"reposiciones": list,
	})
}
