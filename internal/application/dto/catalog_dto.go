package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVariantRequest alta de variante en el catálogo.
type CreateVariantRequest struct {
	ProductName  string            `json:"producto"`
	Category     string            `json:"tipo_producto"` // tamal | bebida
	Presentation string            `json:"presentacion"`  // U | 6 | 12 | 12oz | 1L
	Price        decimal.Decimal   `json:"precio"`
	Cost         *decimal.Decimal  `json:"costo,omitempty"`
	Attributes   map[string]string `json:"atributos,omitempty"`
	ImageURL     string            `json:"imagen,omitempty"`
}

// UpdateVariantRequest campos opcionales; nil = sin cambio.
type UpdateVariantRequest struct {
	ProductName *string           `json:"producto,omitempty"`
	Price       *decimal.Decimal  `json:"precio,omitempty"`
	Cost        *decimal.Decimal  `json:"costo,omitempty"`
	Attributes  map[string]string `json:"atributos,omitempty"`
	ImageURL    *string           `json:"imagen,omitempty"`
	Active      *bool             `json:"activo,omitempty"`
}

// VariantResponse variante del catálogo.
type VariantResponse struct {
	ID           string            `json:"id"`
	ProductName  string            `json:"producto"`
	DisplayName  string            `json:"nombre"`
	Category     string            `json:"tipo_producto"`
	Presentation string            `json:"presentacion"`
	Price        decimal.Decimal   `json:"precio"`
	Cost         *decimal.Decimal  `json:"costo,omitempty"`
	Attributes   map[string]string `json:"atributos,omitempty"`
	ImageURL     string            `json:"imagen,omitempty"`
	Spicy        bool              `json:"picante"`
	Active       bool              `json:"activo"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ComboItemRequest componente del combo.
type ComboItemRequest struct {
	VariantID string `json:"variante_id"`
	Quantity  int    `json:"cantidad"`
}

// CreateComboRequest alta de combo.
type CreateComboRequest struct {
	Name        string             `json:"nombre"`
	Description string             `json:"descripcion"`
	Items       []ComboItemRequest `json:"items"`
	BundlePrice decimal.Decimal    `json:"precio"`
	Active      bool               `json:"activo"`
}

// ComboResponse combo con precio original y ahorro.
type ComboResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"nombre"`
	Description   string             `json:"descripcion"`
	Items         []ComboItemRequest `json:"items"`
	BundlePrice   decimal.Decimal    `json:"precio"`
	OriginalPrice decimal.Decimal    `json:"precio_original"`
	Savings       decimal.Decimal    `json:"ahorro"`
	Active        bool               `json:"activo"`
}
