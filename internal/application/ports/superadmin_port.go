package ports

import (
	"context"
	"io"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// AuthAPI endpoints de autenticación y perfil.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, in dto.UpdateProfileRequest) (*entity.User, error)
	UpdatePassword(ctx context.Context, in dto.UpdatePasswordRequest) error
	UploadAvatar(ctx context.Context, filename string, r io.Reader) (*dto.AvatarResponse, error)
}

// CatalogAPI catálogo global, órdenes y analítica.
type CatalogAPI interface {
	Dashboard(ctx context.Context, period string) (*entity.Dashboard, error)
	Products(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error)
	Product(ctx context.Context, id string) (*entity.Product, error)
	Orders(ctx context.Context, q dto.OrderQuery) ([]entity.Order, error)
	Order(ctx context.Context, id string) (*entity.OrderDetail, error)
	Analytics(ctx context.Context) (*entity.Analytics, error)
}

// StoreAPI directorio de tiendas, stock y personal.
type StoreAPI interface {
	Stores(ctx context.Context, q dto.StoreQuery) ([]entity.Store, error)
	Store(ctx context.Context, id string) (*entity.Store, error)
	UpdateStore(ctx context.Context, id string, in dto.UpdateStoreRequest) (*entity.Store, error)
	StoreStock(ctx context.Context, storeID string) ([]entity.StockItem, error)
	UpdateStoreStock(ctx context.Context, storeID, productID string, quantity int) (*entity.StockItem, error)
	Staff(ctx context.Context, storeID string) ([]entity.StaffMember, error)
	AddStaff(ctx context.Context, in dto.StaffRequest) (*entity.StaffMember, error)
	UpdateStaff(ctx context.Context, id string, in dto.StaffRequest) (*entity.StaffMember, error)
	RemoveStaff(ctx context.Context, id string) error
}

// SuperAdminAPI contrato completo del backend que consumen las pantallas.
// El adaptador concreto es api.Client; los tests inyectan fakes.
type SuperAdminAPI interface {
	AuthAPI
	CatalogAPI
	StoreAPI
}
