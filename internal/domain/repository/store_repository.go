package repository

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// StoreFilter filtros del directorio de tiendas.
type StoreFilter struct {
	Search string
	Status string
}

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	List(filter StoreFilter) ([]entity.Store, error)
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
}
