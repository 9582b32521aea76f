package memory

import (
	"slices"
	"strings"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo personal de tiendas en memoria.
type StaffRepo struct {
	db *DB
}

// NewStaffRepository construye el adaptador de personal.
func NewStaffRepository(db *DB) *StaffRepo {
	return &StaffRepo{db: db}
}

// Create da de alta un empleado.
func (r *StaffRepo) Create(member *entity.StaffMember) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.staffIndex(member.ID) >= 0 {
		return domain.ErrDuplicate
	}
	r.db.staff = append(r.db.staff, *member)
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *StaffRepo) GetByID(id string) (*entity.StaffMember, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	i := r.db.staffIndex(id)
	if i < 0 {
		return nil, nil
	}
	m := r.db.staff[i]
	return &m, nil
}

// GetByEmail obtiene un empleado por email (sin distinguir mayúsculas).
func (r *StaffRepo) GetByEmail(email string) (*entity.StaffMember, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, m := range r.db.staff {
		if strings.EqualFold(m.Email, email) {
			return &m, nil
		}
	}
	return nil, nil
}

// ListByStore personal de la tienda en orden de alta. storeID vacío lista todo.
func (r *StaffRepo) ListByStore(storeID string) ([]entity.StaffMember, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]entity.StaffMember, 0, len(r.db.staff))
	for _, m := range r.db.staff {
		if storeID == "" || m.StoreID == storeID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Update reemplaza el empleado.
func (r *StaffRepo) Update(member *entity.StaffMember) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	i := r.db.staffIndex(member.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.db.staff[i] = *member
	return nil
}

// Delete elimina el empleado.
func (r *StaffRepo) Delete(id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	i := r.db.staffIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.db.staff = slices.Delete(r.db.staff, i, i+1)
	return nil
}
