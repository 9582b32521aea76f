package dto

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// StoreQuery filtros de GET /super-admin/stores.
type StoreQuery struct {
	Search string
	Status string
}

// UpdateStoreRequest entrada de PUT /super-admin/stores/{id} (ajustes y permisos).
type UpdateStoreRequest struct {
	Name        string                  `json:"name" validate:"required,max=120"`
	Location    string                  `json:"location" validate:"required,max=200"`
	Status      string                  `json:"status" validate:"required,oneof=Open Closed Maintenance"`
	Settings    entity.StoreSettings    `json:"settings"`
	Permissions entity.StorePermissions `json:"permissions"`
}

// UpdateStockRequest entrada de PATCH /super-admin/stores/{id}/stock/{productId}.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=1000000"`
}

// ProductQuery filtros de GET /super-admin/products.
type ProductQuery struct {
	Search string
	PageRequest
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []entity.Product `json:"items" validate:"dive"`
	Page  PageResponse     `json:"page"`
}

// OrderQuery filtros de GET /super-admin/orders.
type OrderQuery struct {
	Status  string
	StoreID string
	Limit   int
}
