package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/inventory"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de insumos de forma transaccional
// (ENTRADA, MERMA, COCCION, SALIDA y AJUSTE) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, now: time.Now}
}

// MovementLine renglón de un movimiento. UnitCost solo aplica a ENTRADA.
type MovementLine struct {
	IngredientID string
	Quantity     decimal.Decimal
	UnitCost     *decimal.Decimal
}

// MovementInput entrada para registrar un movimiento sobre uno o varios insumos.
type MovementInput struct {
	BranchID string
	UserID   string
	Type     string
	Items    []MovementLine
}

// RegisterMovement valida el envío completo y lo aplica en una sola transacción:
// si un renglón falla (p. ej. existencia insuficiente) no se aplica ninguno.
// Devuelve el ID de transacción que agrupa los renglones.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (string, error) {
	switch input.Type {
	case entity.MovementEntrada, entity.MovementMerma, entity.MovementCoccion, entity.MovementSalida:
	default:
		return "", domain.ErrInvalidInput
	}
	if input.BranchID == "" || len(input.Items) == 0 {
		return "", domain.ErrInvalidInput
	}
	for _, it := range input.Items {
		if it.IngredientID == "" {
			return "", domain.ErrInvalidInput
		}
		if !it.Quantity.IsPositive() {
			return "", domain.ErrInvalidQuantity
		}
		if input.Type == entity.MovementEntrada && (it.UnitCost == nil || it.UnitCost.IsNegative()) {
			return "", domain.ErrInvalidPrice
		}
	}

	// Orden estable de bloqueo entre transacciones concurrentes.
	lines := make([]MovementLine, len(input.Items))
	copy(lines, input.Items)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].IngredientID < lines[j].IngredientID })

	now := uc.now()
	txID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		for _, line := range lines {
			var err error
			if input.Type == entity.MovementEntrada {
				err = doEntrada(ctx, movRepo, ingredientRepo, input, line, now, txID)
			} else {
				err = doSalida(ctx, movRepo, ingredientRepo, input, line, now, txID)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return txID, nil
}

// doEntrada: bloquea fila (GetForUpdate), CostCalculator, suma existencia, guarda movimiento.
func doEntrada(
	ctx context.Context,
	movRepo repository.InventoryMovementRepository,
	ingredientRepo repository.IngredientRepository,
	input MovementInput, line MovementLine,
	now time.Time, txID string,
) error {
	ing, err := ingredientRepo.GetForUpdate(ctx, line.IngredientID)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	unitCost := *line.UnitCost
	newCost := inventory.CostCalculator(ing.CurrentStock, ing.UnitCost, line.Quantity, unitCost)
	if err := ingredientRepo.UpdateStock(ctx, ing.ID, ing.CurrentStock.Add(line.Quantity), newCost); err != nil {
		return err
	}
	return movRepo.Create(ctx, &entity.InventoryMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		IngredientID:  ing.ID,
		BranchID:      input.BranchID,
		Type:          entity.MovementEntrada,
		Quantity:      line.Quantity,
		UnitCost:      unitCost,
		TotalCost:     line.Quantity.Mul(unitCost),
		Date:          now,
		CreatedBy:     input.UserID,
	})
}

// doSalida: bloquea fila, verifica existencia >= cantidad, resta y guarda al costo promedio actual.
func doSalida(
	ctx context.Context,
	movRepo repository.InventoryMovementRepository,
	ingredientRepo repository.IngredientRepository,
	input MovementInput, line MovementLine,
	now time.Time, txID string,
) error {
	ing, err := ingredientRepo.GetForUpdate(ctx, line.IngredientID)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	if ing.CurrentStock.LessThan(line.Quantity) {
		return domain.ErrInsufficientStock
	}
	if err := ingredientRepo.UpdateStock(ctx, ing.ID, ing.CurrentStock.Sub(line.Quantity), ing.UnitCost); err != nil {
		return err
	}
	return movRepo.Create(ctx, &entity.InventoryMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		IngredientID:  ing.ID,
		BranchID:      input.BranchID,
		Type:          input.Type,
		Quantity:      line.Quantity.Neg(),
		UnitCost:      ing.UnitCost,
		TotalCost:     line.Quantity.Neg().Mul(ing.UnitCost),
		Date:          now,
		CreatedBy:     input.UserID,
	})
}

// AdjustStock aplica un ajuste manual (+1/-1 u otro delta) y lo registra como AJUSTE.
// La existencia resultante no puede quedar negativa.
func (uc *RegisterMovementUseCase) AdjustStock(ctx context.Context, ingredientID, branchID, userID string, delta decimal.Decimal) (*entity.Ingredient, error) {
	if ingredientID == "" || delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	var out *entity.Ingredient
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		ing, err := ingredientRepo.GetForUpdate(ctx, ingredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		newStock := ing.CurrentStock.Add(delta)
		if newStock.IsNegative() {
			return domain.ErrInsufficientStock
		}
		if err := ingredientRepo.UpdateStock(ctx, ing.ID, newStock, ing.UnitCost); err != nil {
			return err
		}
		ing.CurrentStock = newStock
		ing.UpdatedAt = now
		out = ing
		return movRepo.Create(ctx, &entity.InventoryMovement{
			ID:            uuid.New().String(),
			TransactionID: uuid.New().String(),
			IngredientID:  ing.ID,
			BranchID:      branchID,
			Type:          entity.MovementAjuste,
			Quantity:      delta,
			UnitCost:      ing.UnitCost,
			TotalCost:     delta.Mul(ing.UnitCost),
			Date:          now,
			CreatedBy:     userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
