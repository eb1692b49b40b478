package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/pos"
)

// CartHandler opera sobre el carrito de la sesión del request.
type CartHandler struct {
	uc *pos.CheckoutUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *pos.CheckoutUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartDTO
// @Router       /api/v1/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthorized(c)
	}
	out, err := h.uc.GetCart(c.Context(), sess.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar variante al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "item_id y cantidad"
// @Success      200   {object}  dto.CartDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	return h.add(c, h.uc.AddItem)
}

// AddCombo godoc
// @Summary      Agregar combo al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "item_id (combo) y cantidad"
// @Success      200   {object}  dto.CartDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/cart/combos [post]
func (h *CartHandler) AddCombo(c *fiber.Ctx) error {
	return h.add(c, h.uc.AddCombo)
}

type addFunc func(ctx context.Context, sessionID, itemID string, qty int) (*dto.CartDTO, error)

func (h *CartHandler) add(c *fiber.Ctx, fn addFunc) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthorized(c)
	}
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id es requerido"})
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	out, err := fn(c.Context(), sess.ID, in.ItemID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity PUT /api/v1/cart/items/:id; cantidad <= 0 elimina la línea.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthorized(c)
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetQuantity(c.Context(), sess.ID, c.Params("id"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem DELETE /api/v1/cart/items/:id
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthorized(c)
	}
	out, err := h.uc.RemoveItem(c.Context(), sess.ID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear DELETE /api/v1/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthorized(c)
	}
	if err := h.uc.Clear(c.Context(), sess.ID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
