package inventory

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement(ctx, MovementInput).
// La sucursal del cuerpo tiene prioridad; si viene vacía se usa la de la sesión.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, branchID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	input := MovementInput{
		BranchID: in.BranchID,
		UserID:   userID,
		Type:     in.Type,
		Items:    make([]MovementLine, 0, len(in.Items)),
	}
	if input.BranchID == "" {
		input.BranchID = branchID
	}
	for _, it := range in.Items {
		input.Items = append(input.Items, MovementLine{
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			UnitCost:     it.UnitCost,
		})
	}
	txID, err := uc.RegisterMovement(ctx, input)
	if err != nil {
		return nil, err
	}
	return &dto.MovementResponse{TransactionID: txID, Items: len(input.Items)}, nil
}
