package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden.
const (
	OrderCompleted = "Completed"
	OrderPending   = "Pending"
	OrderInTransit = "In Transit"
	OrderRefunded  = "Refunded"
)

// OrderStatuses en el orden de las pestañas del listado.
var OrderStatuses = []string{OrderPending, OrderCompleted, OrderInTransit, OrderRefunded}

// Order fila del listado de órdenes (también usada en recent_orders de tienda).
type Order struct {
	ID           string          `json:"id" validate:"required"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	StoreName    string          `json:"store_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	ItemsCount   int             `json:"items_count"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderDetail orden con cliente, tienda y líneas.
type OrderDetail struct {
	Order
	Customer      Customer        `json:"customer"`
	Store         StoreRef        `json:"store"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	PaymentMethod string          `json:"payment_method"`
}

// Customer datos de contacto del comprador.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// StoreRef referencia mínima a una tienda.
type StoreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderItem línea de una orden.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
