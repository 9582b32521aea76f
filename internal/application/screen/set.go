package screen

import (
	"fmt"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
)

// Set una instancia de cada pantalla, compartiendo el Env.
type Set struct {
	Login          *Login
	Dashboard      *Dashboard
	Inventory      *Inventory
	ProductDetail  *ProductDetail
	Orders         *Orders
	OrderDetail    *OrderDetail
	Analytics      *Analytics
	StoreDirectory *StoreDirectory
	StoreInsight   *StoreInsight
	StoreStock     *StoreStock
	StoreStaff     *StoreStaff
	StoreSettings  *StoreSettings
	Profile        *Profile
}

func NewSet(env *Env) *Set {
	return &Set{
		Login:          NewLogin(env),
		Dashboard:      NewDashboard(env),
		Inventory:      NewInventory(env),
		ProductDetail:  NewProductDetail(env),
		Orders:         NewOrders(env),
		OrderDetail:    NewOrderDetail(env),
		Analytics:      NewAnalytics(env),
		StoreDirectory: NewStoreDirectory(env),
		StoreInsight:   NewStoreInsight(env),
		StoreStock:     NewStoreStock(env),
		StoreStaff:     NewStoreStaff(env),
		StoreSettings:  NewStoreSettings(env),
		Profile:        NewProfile(env),
	}
}

// For devuelve el controlador de una vista.
func (s *Set) For(v navigation.View) (Screen, error) {
	switch v {
	case navigation.Dashboard:
		return s.Dashboard, nil
	case navigation.Inventory:
		return s.Inventory, nil
	case navigation.ProductDetail:
		return s.ProductDetail, nil
	case navigation.Orders:
		return s.Orders, nil
	case navigation.OrderDetail:
		return s.OrderDetail, nil
	case navigation.Analytics:
		return s.Analytics, nil
	case navigation.StoreDirectory:
		return s.StoreDirectory, nil
	case navigation.StoreInsight:
		return s.StoreInsight, nil
	case navigation.StoreStock:
		return s.StoreStock, nil
	case navigation.StoreStaff:
		return s.StoreStaff, nil
	case navigation.StoreSettings:
		return s.StoreSettings, nil
	case navigation.Profile:
		return s.Profile, nil
	}
	return nil, fmt.Errorf("screen: %q: %w", v, domain.ErrUnknownView)
}
