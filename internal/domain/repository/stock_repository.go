package repository

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por tienda+producto.
type StockRepository interface {
	ListByStore(storeID string) ([]entity.StockItem, error)
	// SetQuantity fija la cantidad absoluta; (nil, nil) si el producto no existe.
	SetQuantity(storeID, productID string, qty int) (*entity.StockItem, error)
	Distribution(productID string) ([]entity.StockDistribution, error)
}
