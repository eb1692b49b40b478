package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Carrito y venta
	ErrInvalidQuantity     = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidPrice        = errors.New("el precio no puede ser negativo")
	ErrEmptyCart           = errors.New("el carrito está vacío")
	ErrSaleTotalMismatch   = errors.New("el total de la venta no coincide con la suma de sus líneas")
	ErrInsufficientPayment = errors.New("el efectivo recibido no cubre el total")
	ErrInactiveCombo       = errors.New("el combo no está activo")

	// Catálogo
	ErrUnknownCategory = errors.New("categoría desconocida")

	// Métricas: datos de origen no disponibles; nunca se agregan datos parciales.
	ErrNoData = errors.New("datos no disponibles")

	// Sesión
	ErrSessionNotFound = errors.New("sesión no encontrada o expirada")
)
