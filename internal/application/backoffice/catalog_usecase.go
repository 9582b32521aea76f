package backoffice

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

// Límites de los rankings de analítica.
const (
	topStoresLimit   = 5
	topProductsLimit = 5
)

var hundred = decimal.NewFromInt(100)

// periodWindow ventana móvil de cada período del dashboard.
var periodWindow = map[string]time.Duration{
	entity.PeriodToday: 24 * time.Hour,
	entity.PeriodWeek:  7 * 24 * time.Hour,
	entity.PeriodMonth: 30 * 24 * time.Hour,
	entity.PeriodYear:  365 * 24 * time.Hour,
}

// CatalogUseCase dashboard, catálogo global, órdenes y analítica.
type CatalogUseCase struct {
	products  repository.ProductRepository
	stock     repository.StockRepository
	orders    repository.OrderRepository
	stores    repository.StoreRepository
	analytics repository.AnalyticsRepository
	now       func() time.Time
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	products repository.ProductRepository,
	stock repository.StockRepository,
	orders repository.OrderRepository,
	stores repository.StoreRepository,
	analytics repository.AnalyticsRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:  products,
		stock:     stock,
		orders:    orders,
		stores:    stores,
		analytics: analytics,
		now:       time.Now,
	}
}

// Dashboard KPIs del período. Período vacío = semana.
// RevenueGrowth compara con la ventana inmediatamente anterior del mismo largo.
func (uc *CatalogUseCase) Dashboard(period string) (*entity.Dashboard, error) {
	if period == "" {
		period = entity.PeriodWeek
	}
	window, ok := periodWindow[period]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orders.List(repository.OrderFilter{})
	if err != nil {
		return nil, err
	}
	now := uc.now()
	from := now.Add(-window)
	prevFrom := from.Add(-window)

	var kpi entity.DashboardKPI
	prevRevenue := decimal.Zero
	for _, o := range orders {
		switch {
		case !o.CreatedAt.Before(from):
			kpi.TotalOrders++
			if o.Status != entity.OrderRefunded {
				kpi.TotalRevenue = kpi.TotalRevenue.Add(o.TotalAmount)
			}
		case !o.CreatedAt.Before(prevFrom) && o.Status != entity.OrderRefunded:
			prevRevenue = prevRevenue.Add(o.TotalAmount)
		}
	}
	if !prevRevenue.IsZero() {
		kpi.RevenueGrowth = kpi.TotalRevenue.Sub(prevRevenue).Div(prevRevenue).Mul(hundred).Round(1)
	}

	stores, err := uc.stores.List(repository.StoreFilter{Status: entity.StoreStatusOpen})
	if err != nil {
		return nil, err
	}
	kpi.ActiveStores = len(stores)

	products, _, err := uc.products.Search("", 0, 0)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.Status != entity.StockIn {
			kpi.LowStockItems++
		}
	}

	trend, err := uc.analytics.Trend(period)
	if err != nil {
		return nil, err
	}
	return &entity.Dashboard{Period: period, KPIs: kpi, Trend: trend}, nil
}

// Products listado paginado del catálogo.
func (uc *CatalogUseCase) Products(q dto.ProductQuery) (*dto.ProductListResponse, error) {
	q.DefaultPage()
	items, total, err := uc.products.Search(q.Search, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// Product detalle con la distribución por tienda.
func (uc *CatalogUseCase) Product(id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	dist, err := uc.stock.Distribution(id)
	if err != nil {
		return nil, err
	}
	p.Distribution = dist
	return p, nil
}

// Orders listado filtrado.
func (uc *CatalogUseCase) Orders(q dto.OrderQuery) ([]entity.Order, error) {
	return uc.orders.List(repository.OrderFilter{Status: q.Status, StoreID: q.StoreID, Limit: q.Limit})
}

// Order detalle de una orden.
func (uc *CatalogUseCase) Order(id string) (*entity.OrderDetail, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// Analytics vista global: ingresos, ticket promedio, conversión semanal y rankings.
// Las órdenes reembolsadas no cuentan como ingreso.
func (uc *CatalogUseCase) Analytics() (*entity.Analytics, error) {
	orders, err := uc.orders.List(repository.OrderFilter{})
	if err != nil {
		return nil, err
	}
	out := &entity.Analytics{}

	weekFrom := uc.now().Add(-periodWindow[entity.PeriodWeek])
	weekOrders := 0
	paid := 0
	byStore := map[string]*entity.StoreRanking{}
	byProduct := map[string]*entity.ProductRanking{}
	byCategory := map[string]decimal.Decimal{}

	for _, row := range orders {
		if row.Status == entity.OrderRefunded {
			continue
		}
		o, err := uc.orders.GetByID(row.ID)
		if err != nil {
			return nil, err
		}
		if o == nil {
			continue
		}
		paid++
		if !o.CreatedAt.Before(weekFrom) {
			weekOrders++
		}
		out.TotalRevenue = out.TotalRevenue.Add(o.TotalAmount)

		sr, ok := byStore[o.Store.ID]
		if !ok {
			sr = &entity.StoreRanking{StoreID: o.Store.ID, Name: o.Store.Name}
			byStore[o.Store.ID] = sr
		}
		sr.Revenue = sr.Revenue.Add(o.TotalAmount)

		for _, it := range o.Items {
			pr, ok := byProduct[it.ProductID]
			if !ok {
				pr = &entity.ProductRanking{ProductID: it.ProductID, Name: it.Name}
				byProduct[it.ProductID] = pr
			}
			pr.UnitsSold += it.Quantity
			pr.Revenue = pr.Revenue.Add(it.Subtotal)

			category := "Other"
			if p, err := uc.products.GetByID(it.ProductID); err == nil && p != nil {
				category = p.Category
			}
			byCategory[category] = byCategory[category].Add(it.Subtotal)
		}
	}

	if paid > 0 {
		out.AvgOrderValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(paid))).Round(2)
	}
	traffic, err := uc.analytics.Traffic(entity.PeriodWeek)
	if err != nil {
		return nil, err
	}
	if traffic > 0 {
		out.Conversion = decimal.NewFromInt(int64(weekOrders)).Div(decimal.NewFromInt(int64(traffic))).Mul(hundred).Round(2)
	}
	if out.Revenue, err = uc.analytics.Trend(entity.PeriodWeek); err != nil {
		return nil, err
	}

	out.TopStores = topStores(byStore)
	out.TopProducts = topProducts(byProduct)
	out.CategoryShare = categoryShare(byCategory)
	return out, nil
}

func topStores(m map[string]*entity.StoreRanking) []entity.StoreRanking {
	out := make([]entity.StoreRanking, 0, len(m))
	for _, r := range m {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b entity.StoreRanking) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.StoreID, b.StoreID)
	})
	if len(out) > topStoresLimit {
		out = out[:topStoresLimit]
	}
	return out
}

func topProducts(m map[string]*entity.ProductRanking) []entity.ProductRanking {
	out := make([]entity.ProductRanking, 0, len(m))
	for _, r := range m {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b entity.ProductRanking) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	if len(out) > topProductsLimit {
		out = out[:topProductsLimit]
	}
	return out
}

// categoryShare porcentaje de ingreso por categoría, de mayor a menor.
func categoryShare(m map[string]decimal.Decimal) []entity.CategoryShare {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	out := make([]entity.CategoryShare, 0, len(m))
	if total.IsZero() {
		return out
	}
	for name, v := range m {
		out = append(out, entity.CategoryShare{Category: name, Percentage: v.Div(total).Mul(hundred).Round(1)})
	}
	slices.SortFunc(out, func(a, b entity.CategoryShare) int {
		if c := b.Percentage.Cmp(a.Percentage); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}
