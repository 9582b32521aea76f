package screen

import (
	"context"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// InventoryPageSize productos por consulta del catálogo.
const InventoryPageSize = 50

// Inventory catálogo global con búsqueda remota con debounce.
type Inventory struct {
	env      *Env
	debounce *listing.Debouncer
	Products listing.Resource[[]entity.Product]
	Total    int
}

func NewInventory(env *Env) *Inventory {
	delay := env.Debounce
	if delay == 0 {
		delay = listing.DefaultDebounce
	}
	return &Inventory{env: env, debounce: listing.NewDebouncer(delay)}
}

func (s *Inventory) View() navigation.View   { return navigation.Inventory }
func (s *Inventory) Parent() navigation.View { return navigation.Dashboard }
func (s *Inventory) Leave()                  { s.Products.Cancel() }

// Query texto de búsqueda actual.
func (s *Inventory) Query() string { return s.debounce.Query() }

// Mount consulta de inmediato con la búsqueda vigente.
func (s *Inventory) Mount() listing.Pending {
	sc := s.debounce.Open(s.debounce.Query())
	return s.Fire(sc.Seq)
}

// Type registra un tecleo; la interfaz debe llamar Fire(Seq) tras Delay.
func (s *Inventory) Type(query string) listing.Scheduled {
	return s.debounce.Type(query)
}

// Fire lanza la búsqueda si seq sigue siendo la última programada.
func (s *Inventory) Fire(seq uint64) listing.Pending {
	q, ok := s.debounce.Fire(seq)
	if !ok {
		return nil
	}
	api := s.env.API
	var total int
	return listing.Fetch(s.env.Ctx, &s.Products, func(ctx context.Context) ([]entity.Product, error) {
		res, err := api.Products(ctx, dto.ProductQuery{Search: q, PageRequest: dto.PageRequest{Limit: InventoryPageSize}})
		if err != nil {
			return nil, err
		}
		total = res.Page.Total
		return res.Items, nil
	}, func(err error) listing.Pending {
		if err != nil {
			s.env.Fail("search products", err)
			return nil
		}
		s.Total = total
		return nil
	})
}

// Select abre el detalle del producto.
func (s *Inventory) Select(id string) error {
	return s.env.Router.Navigate(navigation.ProductDetail, id)
}

// ProductDetail detalle de producto con su distribución por tienda.
type ProductDetail struct {
	env     *Env
	Product listing.Resource[*entity.Product]
	// Missing no hay producto seleccionado.
	Missing bool
}

func NewProductDetail(env *Env) *ProductDetail { return &ProductDetail{env: env} }

func (s *ProductDetail) View() navigation.View   { return navigation.ProductDetail }
func (s *ProductDetail) Parent() navigation.View { return navigation.Inventory }
func (s *ProductDetail) Leave()                  { s.Product.Cancel() }

func (s *ProductDetail) Mount() listing.Pending {
	id := s.env.Router.State().ProductID
	s.Missing = id == ""
	if s.Missing {
		s.Product.Reset()
		return nil
	}
	if s.Product.Data != nil && s.Product.Data.ID != id {
		s.Product.Reset()
	}
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Product, func(ctx context.Context) (*entity.Product, error) {
		return api.Product(ctx, id)
	}, s.env.failer("load product"))
}
