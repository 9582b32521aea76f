package memory

import (
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo existencias por tienda en memoria.
type StockRepo struct {
	db *DB
}

// NewStockRepository construye el adaptador de stock.
func NewStockRepository(db *DB) *StockRepo {
	return &StockRepo{db: db}
}

// ListByStore productos que la tienda maneja, en el orden del catálogo.
func (r *StockRepo) ListByStore(storeID string) ([]entity.StockItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	byProduct := r.db.stock[storeID]
	low := r.db.lowThreshold(storeID)
	out := make([]entity.StockItem, 0, len(byProduct))
	for _, p := range r.db.products {
		qty, ok := byProduct[p.ID]
		if !ok {
			continue
		}
		out = append(out, stockItem(p, qty, low))
	}
	return out, nil
}

// SetQuantity fija la cantidad del producto en la tienda (lo da de alta si no la tenía).
func (r *StockRepo) SetQuantity(storeID, productID string, qty int) (*entity.StockItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	i := r.db.productIndex(productID)
	if i < 0 || r.db.storeIndex(storeID) < 0 {
		return nil, nil
	}
	if r.db.stock[storeID] == nil {
		r.db.stock[storeID] = map[string]int{}
	}
	r.db.stock[storeID][productID] = qty
	item := stockItem(r.db.products[i], qty, r.db.lowThreshold(storeID))
	return &item, nil
}

// Distribution unidades del producto por tienda, en el orden del directorio.
func (r *StockRepo) Distribution(productID string) ([]entity.StockDistribution, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []entity.StockDistribution{}
	for _, s := range r.db.stores {
		qty, ok := r.db.stock[s.ID][productID]
		if !ok {
			continue
		}
		out = append(out, entity.StockDistribution{StoreID: s.ID, StoreName: s.Name, Quantity: qty})
	}
	return out, nil
}

func stockItem(p entity.Product, qty, low int) entity.StockItem {
	return entity.StockItem{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Qty:       qty,
		Price:     p.Price,
		Status:    entity.StockStatus(qty, low),
	}
}
