package entity

import "github.com/shopspring/decimal"

// Estados de tienda.
const (
	StoreStatusOpen        = "Open"
	StoreStatusClosed      = "Closed"
	StoreStatusMaintenance = "Maintenance"
)

// Store representa una tienda del directorio. En el listado solo llegan los campos básicos;
// Stats, Permissions, Settings y RecentOrders vienen en el detalle.
type Store struct {
	ID           string           `json:"id" validate:"required"`
	Name         string           `json:"name"`
	Location     string           `json:"location"`
	Status       string           `json:"status"`
	OwnerName    string           `json:"owner_name,omitempty"`
	Logo         string           `json:"logo,omitempty"`
	Rating       float64          `json:"rating"`
	Growth       float64          `json:"growth"` // % frente al período anterior
	Stats        StoreStats       `json:"stats"`
	Permissions  StorePermissions `json:"permissions"`
	Settings     StoreSettings    `json:"settings"`
	RecentOrders []Order          `json:"recent_orders,omitempty"`
}

// StoreStats KPIs de una tienda.
type StoreStats struct {
	Revenue       decimal.Decimal `json:"revenue"`
	TotalOrders   int             `json:"total_orders"`
	TotalProducts int             `json:"total_products"`
}

// StorePermissions módulos que el administrador de tienda puede operar.
type StorePermissions struct {
	Inventory bool `json:"inventory"`
	Orders    bool `json:"orders"`
	Staff     bool `json:"staff"`
	Reports   bool `json:"reports"`
}

// StoreSettings ajustes operativos de la tienda.
type StoreSettings struct {
	Currency          string `json:"currency"`
	Timezone          string `json:"timezone"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}
