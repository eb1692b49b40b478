package ports

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// ReceiptInfo datos de encabezado del comprobante.
type ReceiptInfo struct {
	BusinessName   string
	BranchName     string
	BranchAddress  string
	CurrencyPrefix string
}

// ReceiptPDFGenerator genera el comprobante de venta en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, info ReceiptInfo) ([]byte, error)
}
