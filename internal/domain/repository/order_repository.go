package repository

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// OrderFilter filtros del listado de órdenes. Limit <= 0 significa sin límite.
type OrderFilter struct {
	Status  string
	StoreID string
	Limit   int
}

// OrderRepository define el puerto de lectura de órdenes, más recientes primero.
type OrderRepository interface {
	List(filter OrderFilter) ([]entity.Order, error)
	GetByID(id string) (*entity.OrderDetail, error)
}
