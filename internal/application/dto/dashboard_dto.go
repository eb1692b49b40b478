package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/metrics"
)

// DashboardDTO respuesta de GET /api/v1/dashboard.
type DashboardDTO struct {
	Range     string `json:"rango"`
	DateLabel string `json:"etiqueta"` // ej: "Marzo 2026"

	// Siempre del día y del mes en curso, sin importar el rango.
	SalesToday      decimal.Decimal `json:"ventas_dia"`
	SalesMonth      decimal.Decimal `json:"ventas_mes"`
	SalesTodayLabel string          `json:"ventas_dia_formateado"`
	SalesMonthLabel string          `json:"ventas_mes_formateado"`

	// Dentro del rango pedido.
	Revenue       decimal.Decimal `json:"ingresos"`
	Profit        decimal.Decimal `json:"utilidad"`
	Orders        int             `json:"ordenes"`
	AverageTicket decimal.Decimal `json:"ticket_promedio"`

	TopTamales    []metrics.ItemQuantity   `json:"top_tamales"`
	BeverageHours []metrics.HourRow        `json:"bebidas_por_hora"`
	ProfitByLine  []metrics.CategoryProfit `json:"utilidad_por_linea"`
	Spicy         metrics.SpicySplit       `json:"proporcion_picante"`
	Daily         []metrics.DailyPoint     `json:"serie_diaria"`
}

// RankingDTO respuesta de GET /api/v1/dashboard/ranking.
type RankingDTO struct {
	Start string               `json:"desde"`
	End   string               `json:"hasta"`
	Items []metrics.RankedItem `json:"items"`
}
