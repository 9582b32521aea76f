package backoffice

import (
	"strings"

	"github.com/google/uuid"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

// RecentOrdersLimit órdenes recientes incluidas en el detalle de tienda.
const RecentOrdersLimit = 5

// StoreUseCase directorio de tiendas, stock por tienda y personal.
type StoreUseCase struct {
	stores repository.StoreRepository
	stock  repository.StockRepository
	orders repository.OrderRepository
	staff  repository.StaffRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(
	stores repository.StoreRepository,
	stock repository.StockRepository,
	orders repository.OrderRepository,
	staff repository.StaffRepository,
) *StoreUseCase {
	return &StoreUseCase{stores: stores, stock: stock, orders: orders, staff: staff}
}

// Stores listado del directorio (solo campos básicos).
func (uc *StoreUseCase) Stores(q dto.StoreQuery) ([]entity.Store, error) {
	return uc.stores.List(repository.StoreFilter{Search: q.Search, Status: q.Status})
}

// Store detalle con estadísticas y órdenes recientes.
func (uc *StoreUseCase) Store(id string) (*entity.Store, error) {
	store, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.List(repository.OrderFilter{StoreID: id})
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Status != entity.OrderRefunded {
			store.Stats.Revenue = store.Stats.Revenue.Add(o.TotalAmount)
		}
	}
	store.Stats.TotalOrders = len(orders)
	items, err := uc.stock.ListByStore(id)
	if err != nil {
		return nil, err
	}
	store.Stats.TotalProducts = len(items)
	if len(orders) > RecentOrdersLimit {
		orders = orders[:RecentOrdersLimit]
	}
	store.RecentOrders = orders
	return store, nil
}

// UpdateStore guarda datos generales, ajustes y permisos; devuelve el detalle actualizado.
func (uc *StoreUseCase) UpdateStore(id string, in dto.UpdateStoreRequest) (*entity.Store, error) {
	store, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	store.Name = strings.TrimSpace(in.Name)
	store.Location = strings.TrimSpace(in.Location)
	store.Status = in.Status
	store.Permissions = in.Permissions
	if in.Settings.Currency != "" {
		store.Settings.Currency = in.Settings.Currency
	}
	if in.Settings.Timezone != "" {
		store.Settings.Timezone = in.Settings.Timezone
	}
	if in.Settings.LowStockThreshold > 0 {
		store.Settings.LowStockThreshold = in.Settings.LowStockThreshold
	}
	if err := uc.stores.Update(store); err != nil {
		return nil, err
	}
	return uc.Store(id)
}

// Stock inventario de la tienda.
func (uc *StoreUseCase) Stock(storeID string) ([]entity.StockItem, error) {
	if _, err := uc.find(storeID); err != nil {
		return nil, err
	}
	return uc.stock.ListByStore(storeID)
}

// UpdateStock fija la cantidad de un producto en la tienda.
func (uc *StoreUseCase) UpdateStock(storeID, productID string, qty int) (*entity.StockItem, error) {
	if qty < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.find(storeID); err != nil {
		return nil, err
	}
	item, err := uc.stock.SetQuantity(storeID, productID, qty)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Staff personal de la tienda; storeID vacío lista todo.
func (uc *StoreUseCase) Staff(storeID string) ([]entity.StaffMember, error) {
	if storeID != "" {
		if _, err := uc.find(storeID); err != nil {
			return nil, err
		}
	}
	return uc.staff.ListByStore(storeID)
}

// AddStaff da de alta un empleado. Email duplicado → ErrEmailTaken.
func (uc *StoreUseCase) AddStaff(in dto.StaffRequest) (*entity.StaffMember, error) {
	if _, err := uc.find(in.StoreID); err != nil {
		return nil, err
	}
	if err := uc.ensureEmailFree(in.Email, ""); err != nil {
		return nil, err
	}
	member := &entity.StaffMember{ID: uuid.New().String()}
	applyStaff(member, in)
	if err := uc.staff.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateStaff reemplaza los datos editables de un empleado.
func (uc *StoreUseCase) UpdateStaff(id string, in dto.StaffRequest) (*entity.StaffMember, error) {
	member, err := uc.staff.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.find(in.StoreID); err != nil {
		return nil, err
	}
	if err := uc.ensureEmailFree(in.Email, id); err != nil {
		return nil, err
	}
	applyStaff(member, in)
	if err := uc.staff.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveStaff elimina un empleado.
func (uc *StoreUseCase) RemoveStaff(id string) error {
	return uc.staff.Delete(id)
}

func (uc *StoreUseCase) find(id string) (*entity.Store, error) {
	store, err := uc.stores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

func (uc *StoreUseCase) ensureEmailFree(email, exceptID string) error {
	other, err := uc.staff.GetByEmail(email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != exceptID {
		return domain.ErrEmailTaken
	}
	return nil
}

func applyStaff(m *entity.StaffMember, in dto.StaffRequest) {
	m.StoreID = in.StoreID
	m.Name = strings.TrimSpace(in.Name)
	m.Email = strings.TrimSpace(in.Email)
	m.Role = in.Role
	m.Status = in.Status
	if m.Status == "" {
		m.Status = entity.ShiftOnShift
	}
	m.Active = in.Active
}
