package entity

import "github.com/shopspring/decimal"

// Estados de stock.
const (
	StockIn  = "In Stock"
	StockLow = "Low Stock"
	StockOut = "Out of Stock"
)

// Product representa un producto del catálogo global.
// Distribution solo viene en el detalle (GET /super-admin/products/{id}).
type Product struct {
	ID           string              `json:"id" validate:"required"`
	Name         string              `json:"name"`
	SKU          string              `json:"sku"`
	Category     string              `json:"category"`
	Stock        int                 `json:"stock"`
	Status       string              `json:"status"`
	ImageURL     string              `json:"image_url,omitempty"`
	Price        decimal.Decimal     `json:"price"`
	Description  string              `json:"description,omitempty"`
	Distribution []StockDistribution `json:"distribution,omitempty"`
}

// StockDistribution unidades de un producto en una tienda.
type StockDistribution struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	Quantity  int    `json:"quantity"`
}

// StockItem producto visto desde el inventario de una tienda.
type StockItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
}

// StockStatus clasifica una cantidad contra el umbral de stock bajo.
func StockStatus(qty, lowThreshold int) string {
	switch {
	case qty <= 0:
		return StockOut
	case qty < lowThreshold:
		return StockLow
	default:
		return StockIn
	}
}
