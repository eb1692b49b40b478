package pos

import (
	"context"
	"fmt"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta registrada.
type ReceiptUseCase struct {
	sales     repository.SaleRepository
	branches  repository.BranchRepository
	generator ports.ReceiptPDFGenerator
	info      ports.ReceiptInfo
}

// NewReceiptUseCase construye el caso de uso; info lleva el nombre del negocio y el prefijo de moneda.
func NewReceiptUseCase(
	sales repository.SaleRepository,
	branches repository.BranchRepository,
	generator ports.ReceiptPDFGenerator,
	info ports.ReceiptInfo,
) *ReceiptUseCase {
	return &ReceiptUseCase{sales: sales, branches: branches, generator: generator, info: info}
}

// Receipt devuelve los bytes del PDF y el nombre de archivo sugerido.
// Una venta cuyo total no cuadra con sus líneas no se imprime (ErrSaleTotalMismatch).
func (uc *ReceiptUseCase) Receipt(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	if err := sale.Validate(); err != nil {
		return nil, "", err
	}

	info := uc.info
	if sale.BranchID != "" {
		if b, bErr := uc.branches.GetByID(ctx, sale.BranchID); bErr == nil && b != nil {
			info.BranchName = b.Name
			info.BranchAddress = b.Address
		}
	}

	pdf, err := uc.generator.GenerateReceiptPDF(ctx, sale, info)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("venta_%s.pdf", shortID(sale.ID)), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
