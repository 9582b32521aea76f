package memory

import (
	"slices"
	"strings"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes en memoria.
type OrderRepo struct {
	db *DB
}

// NewOrderRepository construye el adaptador de órdenes.
func NewOrderRepository(db *DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// List devuelve las filas del listado, más recientes primero.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]entity.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]entity.Order, 0, len(r.db.orders))
	for _, o := range r.db.orders {
		if filter.Status != "" && !strings.EqualFold(o.Status, filter.Status) {
			continue
		}
		if filter.StoreID != "" && o.Store.ID != filter.StoreID {
			continue
		}
		out = append(out, o.Order)
	}
	slices.SortStableFunc(out, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// GetByID obtiene el detalle de una orden.
func (r *OrderRepo) GetByID(id string) (*entity.OrderDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, o := range r.db.orders {
		if o.ID == id {
			d := cloneOrder(o)
			return &d, nil
		}
	}
	return nil, nil
}
