// Package analytics contiene los casos de uso del dashboard de ventas y el ranking de productos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/metrics"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
	"github.com/jhoicas/cazuela-chapina-api/pkg/money"
)

const (
	dashboardTopTamales = 5 // número de tamales en el widget del dashboard
	dashboardDailyDays  = 7
)

// DashboardUseCase genera el resumen de ventas del día, del mes y del rango pedido.
//
// Fuentes: SaleRepository y VariantRepository. Las dos cargas corren en paralelo y deben
// completarse ambas; si alguna falla no se agrega nada (ErrNoData).
type DashboardUseCase struct {
	sales    repository.SaleRepository
	variants repository.VariantRepository
	loc      *time.Location
	prefix   string
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc fija la medianoche local de las ventanas.
func NewDashboardUseCase(
	sales repository.SaleRepository,
	variants repository.VariantRepository,
	loc *time.Location,
	currencyPrefix string,
) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{
		sales:    sales,
		variants: variants,
		loc:      loc,
		prefix:   currencyPrefix,
		now:      time.Now,
	}
}

// load trae ventas en [start, end) y el catálogo completo (activos e inactivos)
// en paralelo, como dos consultas independientes.
func (uc *DashboardUseCase) load(ctx context.Context, branchID string, start, end time.Time) ([]entity.Sale, metrics.Catalog, error) {
	type salesResult struct {
		sales []entity.Sale
		err   error
	}
	type catalogResult struct {
		variants []*entity.Variant
		err      error
	}

	salesCh := make(chan salesResult, 1)
	catalogCh := make(chan catalogResult, 1)

	go func() {
		s, err := uc.sales.ListBetween(ctx, branchID, start, end)
		salesCh <- salesResult{s, err}
	}()
	go func() {
		v, err := uc.variants.List(ctx, "", false)
		catalogCh <- catalogResult{v, err}
	}()

	sales := <-salesCh
	catalog := <-catalogCh

	if sales.err != nil {
		return nil, nil, fmt.Errorf("dashboard: ventas: %v: %w", sales.err, domain.ErrNoData)
	}
	if catalog.err != nil {
		return nil, nil, fmt.Errorf("dashboard: catálogo: %v: %w", catalog.err, domain.ErrNoData)
	}
	return uc.localize(sales.sales), metrics.NewCatalog(catalog.variants), nil
}

// localize pasa cada venta a la zona del POS; pgx entrega timestamptz en la zona del servidor
// y la agrupación por hora usa la hora de reloj de la venta.
func (uc *DashboardUseCase) localize(sales []entity.Sale) []entity.Sale {
	for i := range sales {
		sales[i].Timestamp = sales[i].Timestamp.In(uc.loc)
	}
	return sales
}

// GetDashboard construye el DashboardDTO. rangeName: today|week|month (vacío = today).
// branchID vacío agrega todas las sucursales.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, branchID, rangeName string) (*dto.DashboardDTO, error) {
	rng, err := metrics.ParseRange(rangeName)
	if err != nil {
		return nil, err
	}
	now := uc.now().In(uc.loc)

	// ── Ventanas ───────────────────────────────────────────────────────────────
	today := metrics.Today(now)
	month := metrics.MonthToDate(now)
	week := metrics.Last7Days(now)
	selected := rng.Window(now)

	// Una sola carga que cubre el mes y los últimos 7 días (al inicio de mes la semana empieza antes).
	start := month.Start
	if week.Start.Before(start) {
		start = week.Start
	}

	all, catalog, err := uc.load(ctx, branchID, start, today.End)
	if err != nil {
		return nil, err
	}

	// ── Agregaciones ───────────────────────────────────────────────────────────
	inRange := metrics.FilterByWindow(all, selected)
	salesToday := metrics.AggregateRevenue(metrics.FilterByWindow(all, today))
	salesMonth := metrics.AggregateRevenue(metrics.FilterByWindow(all, month))

	return &dto.DashboardDTO{
		Range:           string(rng),
		DateLabel:       monthLabel(now),
		SalesToday:      salesToday,
		SalesMonth:      salesMonth,
		SalesTodayLabel: money.FormatCurrency(uc.prefix, salesToday),
		SalesMonthLabel: money.FormatCurrency(uc.prefix, salesMonth),
		Revenue:         metrics.AggregateRevenue(inRange),
		Profit:          metrics.AggregateProfit(inRange, catalog),
		Orders:          len(inRange),
		AverageTicket:   metrics.AverageTicket(inRange),
		TopTamales:      metrics.TopN(inRange, catalog, entity.CategoryTamal, dashboardTopTamales),
		BeverageHours:   metrics.ByHourAndCategory(inRange, catalog, entity.CategoryBebida),
		ProfitByLine:    metrics.ProfitByCategory(inRange, catalog, entity.Categories()),
		Spicy:           metrics.SpicyRatio(inRange, catalog),
		Daily:           metrics.DailySeries(metrics.FilterByWindow(all, week), catalog, now, dashboardDailyDays),
	}, nil
}

// Ranking clasificación Pareto de productos por ingreso en [start, end).
func (uc *DashboardUseCase) Ranking(ctx context.Context, branchID string, start, end time.Time) (*dto.RankingDTO, error) {
	w, err := metrics.Between(start, end)
	if err != nil {
		return nil, err
	}
	sales, catalog, err := uc.load(ctx, branchID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return &dto.RankingDTO{
		Start: w.Start.Format(time.RFC3339),
		End:   w.End.Format(time.RFC3339),
		Items: metrics.ParetoRanking(metrics.FilterByWindow(sales, w), catalog),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
