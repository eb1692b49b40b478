// Package pos contiene los casos de uso de caja: carrito por sesión, envío de órdenes
// y comprobantes de venta.
package pos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/cart"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
	"github.com/jhoicas/cazuela-chapina-api/pkg/money"
)

const comboPrefix = "combo:"

// CheckoutConfig parámetros de caja.
type CheckoutConfig struct {
	TaxRate        decimal.Decimal
	CurrencyPrefix string
}

// CheckoutUseCase carrito de la sesión y envío de la orden.
type CheckoutUseCase struct {
	carts     ports.CartStore
	variants  repository.VariantRepository
	combos    repository.ComboRepository
	txRunner  SalesTxRunner
	publisher ports.OrderPublisher
	cfg       CheckoutConfig
	log       *logger.Logger
	now       func() time.Time
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	carts ports.CartStore,
	variants repository.VariantRepository,
	combos repository.ComboRepository,
	txRunner SalesTxRunner,
	publisher ports.OrderPublisher,
	cfg CheckoutConfig,
	log *logger.Logger,
) *CheckoutUseCase {
	if publisher == nil {
		publisher = ports.NopOrderPublisher{}
	}
	return &CheckoutUseCase{
		carts:     carts,
		variants:  variants,
		combos:    combos,
		txRunner:  txRunner,
		publisher: publisher,
		cfg:       cfg,
		log:       log.With("component", "checkout"),
		now:       time.Now,
	}
}

// GetCart devuelve el carrito de la sesión con subtotal, IVA y total estimados.
func (uc *CheckoutUseCase) GetCart(ctx context.Context, sessionID string) (*dto.CartDTO, error) {
	c, err := uc.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.toCartDTO(c), nil
}

// AddItem agrega una variante activa del catálogo al carrito con el precio vigente.
func (uc *CheckoutUseCase) AddItem(ctx context.Context, sessionID, variantID string, qty int) (*dto.CartDTO, error) {
	if strings.HasPrefix(variantID, comboPrefix) {
		return uc.AddCombo(ctx, sessionID, strings.TrimPrefix(variantID, comboPrefix), qty)
	}
	if qty <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	v, err := uc.variants.GetByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if v == nil || !v.Active {
		return nil, domain.ErrNotFound
	}
	return uc.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.Add(cart.Line{ItemID: v.ID, Name: v.DisplayName(), UnitPrice: v.Price}, qty)
	})
}

// AddCombo agrega un combo activo como una sola línea al precio del paquete.
func (uc *CheckoutUseCase) AddCombo(ctx context.Context, sessionID, comboID string, qty int) (*dto.CartDTO, error) {
	if qty <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	combo, err := uc.combos.GetByID(ctx, comboID)
	if err != nil {
		return nil, err
	}
	if combo == nil {
		return nil, domain.ErrNotFound
	}
	if !combo.Active {
		return nil, domain.ErrInactiveCombo
	}
	return uc.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.Add(cart.Line{ItemID: combo.CartKey(), Name: combo.Name, UnitPrice: combo.BundlePrice, IsCombo: true}, qty)
	})
}

// SetQuantity fija la cantidad de una línea; <= 0 la elimina. ErrNotFound si la línea no existe.
func (uc *CheckoutUseCase) SetQuantity(ctx context.Context, sessionID, itemID string, qty int) (*dto.CartDTO, error) {
	return uc.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if !c.SetQuantity(itemID, qty) {
			return domain.ErrNotFound
		}
		return nil
	})
}

// RemoveItem elimina la línea; si no existe el carrito queda igual.
func (uc *CheckoutUseCase) RemoveItem(ctx context.Context, sessionID, itemID string) (*dto.CartDTO, error) {
	return uc.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.Remove(itemID)
		return nil
	})
}

// Clear vacía el carrito de la sesión.
func (uc *CheckoutUseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.carts.Delete(ctx, sessionID)
}

func (uc *CheckoutUseCase) mutate(ctx context.Context, sessionID string, fn func(*cart.Cart) error) (*dto.CartDTO, error) {
	c, err := uc.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := uc.carts.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return uc.toCartDTO(c), nil
}

// SubmitOrder registra la venta y devuelve el total autoritativo.
//
// Sin in.Items se envía el carrito de la sesión: se vacía solo si la venta se guardó;
// ante cualquier error queda intacto para reintentar. Los precios se toman del catálogo
// vigente, no de la foto guardada en el carrito. La publicación del evento es best-effort.
func (uc *CheckoutUseCase) SubmitOrder(ctx context.Context, session *entity.Session, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	fromCart := len(in.Items) == 0
	requested := in.Items
	if fromCart {
		c, err := uc.carts.Load(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		if c.IsEmpty() {
			return nil, domain.ErrEmptyCart
		}
		for _, l := range c.Lines() {
			requested = append(requested, dto.OrderItemRequest{ItemID: l.ItemID, Quantity: l.Quantity})
		}
	}

	items, err := uc.priceItems(ctx, requested)
	if err != nil {
		return nil, err
	}
	totals := cart.ComputeTotals(entity.LinesTotal(items), uc.cfg.TaxRate)

	change := decimal.Zero
	if in.PaymentMethod == entity.PaymentCash {
		if in.CashReceived == nil || in.CashReceived.LessThan(totals.Total) {
			return nil, domain.ErrInsufficientPayment
		}
		change = in.CashReceived.Sub(totals.Total)
	}

	branchID := in.BranchID
	if branchID == "" {
		branchID = session.BranchID
	}
	sale, err := entity.NewSale(uuid.New().String(), branchID, session.UserID, uc.now(), items, totals.Subtotal, totals.Tax, in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if err := uc.txRunner.RunSale(ctx, func(sales repository.SaleRepository) error {
		return sales.Create(ctx, sale)
	}); err != nil {
		uc.log.Error().Err(err).Str("session_id", session.ID).Msg("no se pudo registrar la venta")
		return nil, err
	}

	if err := uc.publisher.PublishOrderCreated(ctx, toOrderEvent(sale)); err != nil {
		uc.log.Warn().Err(err).Str("order_id", sale.ID).Msg("evento order.created no publicado")
	}
	if fromCart {
		if err := uc.carts.Delete(ctx, session.ID); err != nil {
			uc.log.Warn().Err(err).Str("session_id", session.ID).Msg("venta registrada pero el carrito no se pudo vaciar")
		}
	}

	uc.log.Info().Str("order_id", sale.ID).Str("branch_id", branchID).Str("total", sale.Total.StringFixed(2)).Msg("venta registrada")
	return &dto.CreateOrderResponse{
		OrderID:  sale.ID,
		Subtotal: sale.Subtotal,
		Tax:      sale.Tax,
		Total:    sale.Total,
		Change:   change,
		Label:    money.FormatCurrency(uc.cfg.CurrencyPrefix, sale.Total),
	}, nil
}

// priceItems arma las líneas de venta con precios del catálogo. Ítems repetidos se fusionan.
func (uc *CheckoutUseCase) priceItems(ctx context.Context, requested []dto.OrderItemRequest) ([]entity.SaleItem, error) {
	c := cart.New()
	for _, r := range requested {
		if r.ItemID == "" {
			return nil, domain.ErrInvalidInput
		}
		if r.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		line, err := uc.catalogLine(ctx, r.ItemID)
		if err != nil {
			return nil, err
		}
		if err := c.Add(line, r.Quantity); err != nil {
			return nil, err
		}
	}
	lines := c.Lines()
	items := make([]entity.SaleItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.SaleItem{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			IsCombo:   l.IsCombo,
		})
	}
	return items, nil
}

func (uc *CheckoutUseCase) catalogLine(ctx context.Context, itemID string) (cart.Line, error) {
	if strings.HasPrefix(itemID, comboPrefix) {
		combo, err := uc.combos.GetByID(ctx, strings.TrimPrefix(itemID, comboPrefix))
		if err != nil {
			return cart.Line{}, err
		}
		if combo == nil {
			return cart.Line{}, domain.ErrNotFound
		}
		if !combo.Active {
			return cart.Line{}, domain.ErrInactiveCombo
		}
		return cart.Line{ItemID: combo.CartKey(), Name: combo.Name, UnitPrice: combo.BundlePrice, IsCombo: true}, nil
	}
	v, err := uc.variants.GetByID(ctx, itemID)
	if err != nil {
		return cart.Line{}, err
	}
	if v == nil || !v.Active {
		return cart.Line{}, domain.ErrNotFound
	}
	return cart.Line{ItemID: v.ID, Name: v.DisplayName(), UnitPrice: v.Price}, nil
}

func (uc *CheckoutUseCase) toCartDTO(c *cart.Cart) *dto.CartDTO {
	lines := c.Lines()
	out := &dto.CartDTO{Lines: make([]dto.CartLineDTO, 0, len(lines))}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.CartLineDTO{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Amount:    l.Amount(),
			IsCombo:   l.IsCombo,
		})
		out.ItemCount += l.Quantity
	}
	totals := cart.ComputeTotals(c.Total(), uc.cfg.TaxRate)
	out.Subtotal = totals.Subtotal
	out.Tax = totals.Tax
	out.Total = totals.Total
	out.TotalLabel = money.FormatCurrency(uc.cfg.CurrencyPrefix, totals.Total)
	return out
}

func toOrderEvent(s *entity.Sale) dto.OrderCreatedEvent {
	items := make([]dto.OrderEventItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.OrderEventItem{ItemID: it.ItemID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return dto.OrderCreatedEvent{
		OrderID:       s.ID,
		BranchID:      s.BranchID,
		StaffID:       s.StaffID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.Timestamp,
	}
}
