package memory

import (
	"strings"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository en memoria.
type StoreRepo struct {
	db *DB
}

// NewStoreRepository construye el adaptador de tiendas.
func NewStoreRepository(db *DB) *StoreRepo {
	return &StoreRepo{db: db}
}

// List devuelve las tiendas en orden de alta. Search busca en nombre y ubicación.
func (r *StoreRepo) List(filter repository.StoreFilter) ([]entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]entity.Store, 0, len(r.db.stores))
	for _, s := range r.db.stores {
		if filter.Status != "" && !strings.EqualFold(s.Status, filter.Status) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) && !strings.Contains(strings.ToLower(s.Location), q) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	i := r.db.storeIndex(id)
	if i < 0 {
		return nil, nil
	}
	s := r.db.stores[i]
	return &s, nil
}

// Update reemplaza la tienda. Stats y RecentOrders son derivados y no se guardan.
func (r *StoreRepo) Update(store *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	i := r.db.storeIndex(store.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	s := *store
	s.Stats = entity.StoreStats{}
	s.RecentOrders = nil
	r.db.stores[i] = s
	return nil
}
