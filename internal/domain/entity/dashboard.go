package entity

import "github.com/shopspring/decimal"

// Períodos del dashboard, en el orden del selector.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Periods orden del ciclo del selector de período.
var Periods = []string{PeriodToday, PeriodWeek, PeriodMonth, PeriodYear}

// Dashboard KPIs agregados + serie de tendencia (GET /super-admin/dashboard?period=).
type Dashboard struct {
	Period string       `json:"period"`
	KPIs   DashboardKPI `json:"kpis"`
	Trend  []TrendPoint `json:"trend"`
}

// DashboardKPI indicadores principales de la plataforma.
type DashboardKPI struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int             `json:"total_orders"`
	ActiveStores  int             `json:"active_stores"`
	LowStockItems int             `json:"low_stock_items"`
	RevenueGrowth decimal.Decimal `json:"revenue_growth"` // % frente al período anterior
}

// TrendPoint punto de una serie (ej: {"label":"MON","value":109}).
type TrendPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Analytics vista global de analítica (GET /super-admin/analytics).
type Analytics struct {
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	AvgOrderValue decimal.Decimal  `json:"avg_order_value"`
	Conversion    decimal.Decimal  `json:"conversion_rate"`
	Revenue       []TrendPoint     `json:"revenue"`
	TopStores     []StoreRanking   `json:"top_stores"`
	TopProducts   []ProductRanking `json:"top_products"`
	CategoryShare []CategoryShare  `json:"category_share"`
}

// StoreRanking ingreso por tienda.
type StoreRanking struct {
	StoreID string          `json:"store_id"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ProductRanking unidades e ingreso por producto.
type ProductRanking struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategoryShare participación porcentual de una categoría.
type CategoryShare struct {
	Category   string          `json:"category"`
	Percentage decimal.Decimal `json:"percentage"`
}
