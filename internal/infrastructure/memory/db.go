// Package memory implementa los repositorios del backend stub sobre estructuras en memoria.
//
// Un único DB protegido por RWMutex guarda todas las tablas; cada repositorio es una vista
// sobre él. Las lecturas devuelven copias, nunca punteros al estado interno.
package memory

import (
	"slices"
	"sync"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// CatalogLowStock umbral de "Low Stock" para el stock agregado del catálogo.
const CatalogLowStock = 20

// DB estado en memoria del backend stub.
type DB struct {
	mu       sync.RWMutex
	users    map[string]entity.User
	stores   []entity.Store
	products []entity.Product
	stock    map[string]map[string]int // storeID -> productID -> qty
	orders   []entity.OrderDetail
	staff    []entity.StaffMember
	trends   map[string][]entity.TrendPoint
	traffic  map[string]int
}

// NewDB crea una base vacía.
func NewDB() *DB {
	return &DB{
		users:   map[string]entity.User{},
		stock:   map[string]map[string]int{},
		trends:  map[string][]entity.TrendPoint{},
		traffic: map[string]int{},
	}
}

func (db *DB) storeIndex(id string) int {
	return slices.IndexFunc(db.stores, func(s entity.Store) bool { return s.ID == id })
}

func (db *DB) productIndex(id string) int {
	return slices.IndexFunc(db.products, func(p entity.Product) bool { return p.ID == id })
}

func (db *DB) staffIndex(id string) int {
	return slices.IndexFunc(db.staff, func(m entity.StaffMember) bool { return m.ID == id })
}

// lowThreshold umbral de stock bajo configurado en la tienda (CatalogLowStock si no hay).
func (db *DB) lowThreshold(storeID string) int {
	if i := db.storeIndex(storeID); i >= 0 && db.stores[i].Settings.LowStockThreshold > 0 {
		return db.stores[i].Settings.LowStockThreshold
	}
	return CatalogLowStock
}

// totalStock suma las unidades del producto en todas las tiendas.
func (db *DB) totalStock(productID string) int {
	total := 0
	for _, byProduct := range db.stock {
		total += byProduct[productID]
	}
	return total
}

// withStock copia el producto con Stock y Status agregados.
func (db *DB) withStock(p entity.Product) entity.Product {
	p.Stock = db.totalStock(p.ID)
	p.Status = entity.StockStatus(p.Stock, CatalogLowStock)
	p.Distribution = nil
	return p
}

func cloneOrder(o entity.OrderDetail) entity.OrderDetail {
	o.Items = slices.Clone(o.Items)
	return o
}
