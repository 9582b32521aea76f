// Package navigation implementa el conmutador de vistas de la consola.
// No hay pila de historial: cada pantalla conoce su vista padre.
package navigation

import (
	"fmt"
	"sync"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
)

// View identificador de pantalla.
type View string

const (
	Dashboard      View = "dashboard"
	Inventory      View = "inventory"
	ProductDetail  View = "product-detail"
	Orders         View = "orders"
	OrderDetail    View = "order-detail"
	Analytics      View = "analytics"
	StoreDirectory View = "store-directory"
	StoreInsight   View = "store-insight"
	StoreStock     View = "store-stock"
	StoreStaff     View = "store-staff"
	StoreSettings  View = "store-settings"
	Profile        View = "profile"
)

// Views todas las vistas válidas.
var Views = []View{
	Dashboard, Inventory, ProductDetail, Orders, OrderDetail, Analytics,
	StoreDirectory, StoreInsight, StoreStock, StoreStaff, StoreSettings, Profile,
}

// Valid indica si v pertenece al conjunto cerrado de vistas.
func (v View) Valid() bool {
	for _, x := range Views {
		if x == v {
			return true
		}
	}
	return false
}

// State vista actual e ids seleccionados.
type State struct {
	View      View
	ProductID string
	OrderID   string
	StoreID   string
}

// Router dueño del estado de navegación.
type Router struct {
	mu       sync.RWMutex
	state    State
	onChange func(State)
}

// NewRouter arranca en el dashboard.
func NewRouter() *Router {
	return &Router{state: State{View: Dashboard}}
}

// OnChange registra un listener que se invoca tras cada navegación.
func (r *Router) OnChange(fn func(State)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Navigate cambia de vista. Un id no vacío se guarda en la ranura que corresponde al destino
// (product-detail, order-detail o store-insight); en el resto se ignora. No se verifica
// que el id exista.
func (r *Router) Navigate(view View, id string) error {
	if !view.Valid() {
		return fmt.Errorf("navigation: %q: %w", view, domain.ErrUnknownView)
	}
	r.mu.Lock()
	r.state.View = view
	if id != "" {
		switch view {
		case ProductDetail:
			r.state.ProductID = id
		case OrderDetail:
			r.state.OrderID = id
		case StoreInsight:
			r.state.StoreID = id
		}
	}
	st, fn := r.state, r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn(st)
	}
	return nil
}

// Reset vuelve al dashboard y limpia las selecciones (login y cierre de sesión forzado).
func (r *Router) Reset() {
	r.mu.Lock()
	r.state = State{View: Dashboard}
	st, fn := r.state, r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}

// State copia del estado actual.
func (r *Router) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *Router) Current() View { return r.State().View }
