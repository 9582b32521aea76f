package repository

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// StaffRepository define el puerto de persistencia para StaffMember (DIP).
type StaffRepository interface {
	Create(member *entity.StaffMember) error
	GetByID(id string) (*entity.StaffMember, error)
	GetByEmail(email string) (*entity.StaffMember, error)
	ListByStore(storeID string) ([]entity.StaffMember, error)
	Update(member *entity.StaffMember) error
	Delete(id string) error
}
