package screen

import (
	"context"
	"strconv"
	"strings"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// QtyForm modal de ajuste de cantidad.
type QtyForm struct {
	ProductID string
	Name      string
	Qty       string
	Fields    listing.FieldErrors
	Saving    bool
}

// StoreStock inventario de la tienda seleccionada.
type StoreStock struct {
	env     *Env
	Items   listing.Resource[[]entity.StockItem]
	Search  string
	Sort    *listing.SortCycle[entity.StockItem]
	Form    *QtyForm
	Missing bool

	at subject
}

func NewStoreStock(env *Env) *StoreStock {
	return &StoreStock{
		env: env,
		Sort: listing.NewSortCycle(
			listing.SortField[entity.StockItem]{Name: "name", Compare: listing.ByName(func(i entity.StockItem) string { return i.Name })},
			listing.SortField[entity.StockItem]{Name: "price", Compare: func(a, b entity.StockItem) int { return b.Price.Cmp(a.Price) }},
			listing.SortField[entity.StockItem]{Name: "qty", Compare: listing.Descending(func(i entity.StockItem) int { return i.Qty })},
		),
	}
}

func (s *StoreStock) View() navigation.View   { return navigation.StoreStock }
func (s *StoreStock) Parent() navigation.View { return navigation.StoreInsight }
func (s *StoreStock) Leave()                  { s.Items.Cancel(); s.Form = nil; s.at.leave() }

func (s *StoreStock) StoreID() string { return s.env.Router.State().StoreID }

func (s *StoreStock) Mount() listing.Pending {
	id := s.StoreID()
	s.Missing = id == ""
	if s.at.enter(id) || s.Missing {
		s.Items.Reset()
	}
	if s.Missing {
		return nil
	}
	return s.load(id)
}

func (s *StoreStock) load(storeID string) listing.Pending {
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Items, func(ctx context.Context) ([]entity.StockItem, error) {
		return api.StoreStock(ctx, storeID)
	}, s.env.failer("load stock"))
}

// CycleSort pasa al siguiente criterio (name → price → qty).
func (s *StoreStock) CycleSort() string { return s.Sort.Next().Name }

// Visible filtra por nombre o SKU y ordena según el criterio actual.
func (s *StoreStock) Visible() []entity.StockItem {
	filtered := listing.Filter(s.Items.Data, s.Search, func(i entity.StockItem) []string {
		return []string{i.Name, i.SKU}
	})
	return s.Sort.Apply(filtered)
}

// EditQty abre el modal para un producto de la lista.
func (s *StoreStock) EditQty(productID string) bool {
	for _, it := range s.Items.Data {
		if it.ProductID == productID {
			s.Form = &QtyForm{ProductID: it.ProductID, Name: it.Name, Qty: strconv.Itoa(it.Qty)}
			return true
		}
	}
	return false
}

func (s *StoreStock) CloseForm() { s.Form = nil }

// SubmitQty envía la nueva cantidad; en éxito cierra el modal y recarga la lista.
func (s *StoreStock) SubmitQty() listing.Pending {
	f := s.Form
	storeID := s.StoreID()
	if f == nil || f.Saving || storeID == "" {
		return nil
	}
	f.Fields = nil
	qty, err := strconv.Atoi(strings.TrimSpace(f.Qty))
	if err != nil {
		f.Fields = listing.FieldErrors{"quantity": "The quantity must be a whole number."}
		return nil
	}
	req := dto.UpdateStockRequest{Quantity: qty}
	if err := s.env.Validate.Struct(req); err != nil {
		f.Fields = listing.FieldErrorsFrom(err)
		return nil
	}
	f.Saving = true
	api := s.env.API
	ctx := s.env.Ctx
	return func() listing.Commit {
		_, err := api.UpdateStoreStock(ctx, storeID, f.ProductID, qty)
		return func() listing.Pending {
			f.Saving = false
			if err != nil {
				if fields := listing.FieldErrorsFrom(err); len(fields) > 0 {
					f.Fields = fields
					return nil
				}
				s.env.Fail("update stock", err)
				return nil
			}
			if s.Form == f {
				s.Form = nil
			}
			s.env.Notify.Success("Stock updated")
			if !s.at.live(storeID) || s.StoreID() != storeID {
				return nil
			}
			return s.load(storeID)
		}
	}
}
