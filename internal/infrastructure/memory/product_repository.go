package memory

import (
	"strings"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo global en memoria.
type ProductRepo struct {
	db *DB
}

// NewProductRepository construye el adaptador del catálogo.
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// GetByID obtiene un producto con su stock agregado.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	i := r.db.productIndex(id)
	if i < 0 {
		return nil, nil
	}
	p := r.db.withStock(r.db.products[i])
	return &p, nil
}

// Search filtra y pagina. limit <= 0 devuelve todo desde offset.
func (r *ProductRepo) Search(query string, limit, offset int) ([]entity.Product, int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]entity.Product, 0, len(r.db.products))
	for _, p := range r.db.products {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matches = append(matches, r.db.withStock(p))
		}
	}
	total := len(matches)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []entity.Product{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matches[offset:end], total, nil
}
