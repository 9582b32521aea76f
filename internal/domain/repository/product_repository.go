package repository

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo global.
// Stock y Status de cada producto se agregan sobre todas las tiendas.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// Search filtra por nombre, SKU o categoría (sin distinguir mayúsculas) y devuelve
	// la página pedida junto con el total de coincidencias.
	Search(query string, limit, offset int) ([]entity.Product, int, error)
}
