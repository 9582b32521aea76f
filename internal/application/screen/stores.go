package screen

import (
	"context"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// StoreDirectory directorio de tiendas con búsqueda local.
type StoreDirectory struct {
	env    *Env
	Search string
	Stores listing.Resource[[]entity.Store]
}

func NewStoreDirectory(env *Env) *StoreDirectory { return &StoreDirectory{env: env} }

func (s *StoreDirectory) View() navigation.View   { return navigation.StoreDirectory }
func (s *StoreDirectory) Parent() navigation.View { return navigation.Dashboard }
func (s *StoreDirectory) Leave()                  { s.Stores.Cancel() }

func (s *StoreDirectory) Mount() listing.Pending {
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Stores, func(ctx context.Context) ([]entity.Store, error) {
		return api.Stores(ctx, dto.StoreQuery{})
	}, s.env.failer("load stores"))
}

// Visible tiendas filtradas por nombre o ubicación.
func (s *StoreDirectory) Visible() []entity.Store {
	return listing.Filter(s.Stores.Data, s.Search, func(st entity.Store) []string {
		return []string{st.Name, st.Location}
	})
}

func (s *StoreDirectory) Select(id string) error {
	return s.env.Router.Navigate(navigation.StoreInsight, id)
}

// subject tienda montada por una pantalla. Los commits de mutaciones solo recargan si la
// pantalla sigue montada sobre la misma tienda.
type subject struct {
	storeID string
	mounted bool
}

// enter registra un montaje sobre id e indica si la tienda cambió.
func (s *subject) enter(id string) bool {
	changed := s.storeID != id
	s.storeID, s.mounted = id, true
	return changed
}

func (s *subject) leave() { s.mounted = false }

func (s *subject) live(storeID string) bool { return s.mounted && s.storeID == storeID }

// storeScoped base de las pantallas que dependen de la tienda seleccionada.
type storeScoped struct {
	env     *Env
	Store   listing.Resource[*entity.Store]
	Missing bool
}

// StoreID tienda seleccionada en el router.
func (s *storeScoped) StoreID() string { return s.env.Router.State().StoreID }

func (s *storeScoped) loadStore(op string, done func(err error) listing.Pending) listing.Pending {
	id := s.StoreID()
	s.Missing = id == ""
	if s.Missing {
		s.Store.Reset()
		return nil
	}
	if s.Store.Data != nil && s.Store.Data.ID != id {
		s.Store.Reset()
	}
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Store, func(ctx context.Context) (*entity.Store, error) {
		return api.Store(ctx, id)
	}, func(err error) listing.Pending {
		if err != nil {
			s.env.Fail(op, err)
		}
		if done != nil {
			return done(err)
		}
		return nil
	})
}

// StoreSections accesos de la vista de tienda.
var StoreSections = []navigation.View{navigation.StoreStock, navigation.StoreStaff, navigation.StoreSettings}

// StoreInsight resumen de una tienda: KPIs y órdenes recientes.
type StoreInsight struct {
	storeScoped
}

func NewStoreInsight(env *Env) *StoreInsight { return &StoreInsight{storeScoped{env: env}} }

func (s *StoreInsight) View() navigation.View   { return navigation.StoreInsight }
func (s *StoreInsight) Parent() navigation.View { return navigation.StoreDirectory }
func (s *StoreInsight) Leave()                  { s.Store.Cancel() }
func (s *StoreInsight) Mount() listing.Pending  { return s.loadStore("load store", nil) }

// Open navega a stock, personal o ajustes de la tienda actual.
func (s *StoreInsight) Open(view navigation.View) error {
	return s.env.Router.Navigate(view, "")
}

// SelectOrder abre una orden reciente de la tienda.
func (s *StoreInsight) SelectOrder(id string) error {
	return s.env.Router.Navigate(navigation.OrderDetail, id)
}
