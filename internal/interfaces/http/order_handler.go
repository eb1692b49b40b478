package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/pos"
)

// OrderHandler envío de órdenes y comprobantes.
type OrderHandler struct {
	checkout *pos.CheckoutUseCase
	receipt  *pos.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(checkout *pos.CheckoutUseCase, receipt *pos.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{checkout: checkout, receipt: receipt}
}

// Create godoc
// @Summary      Enviar orden
// @Description  Sin items se envía el carrito de la sesión. El total lo calcula el servidor
//
//	con los precios vigentes del catálogo.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "metodo_pago, efectivo_recibido, items opcionales"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/ordenes [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthorized(c)
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.checkout.SubmitOrder(c.Context(), sess, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de una venta
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/v1/ordenes/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipt.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
