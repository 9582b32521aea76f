package screen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// OrderTabs pestañas del listado; "All" no envía filtro de estado.
var OrderTabs = append([]string{"All"}, entity.OrderStatuses...)

// Orders listado global de órdenes con pestañas de estado y búsqueda local.
type Orders struct {
	env    *Env
	Tab    int
	Search string
	Orders listing.Resource[[]entity.Order]
}

func NewOrders(env *Env) *Orders { return &Orders{env: env} }

func (s *Orders) View() navigation.View   { return navigation.Orders }
func (s *Orders) Parent() navigation.View { return navigation.Dashboard }
func (s *Orders) Leave()                  { s.Orders.Cancel() }
func (s *Orders) Mount() listing.Pending  { return s.load() }

// SetTab cambia de pestaña (con wrap) y recarga.
func (s *Orders) SetTab(i int) listing.Pending {
	n := len(OrderTabs)
	s.Tab = ((i % n) + n) % n
	return s.load()
}

// Status estado enviado al backend; "" para todas.
func (s *Orders) Status() string {
	if s.Tab == 0 {
		return ""
	}
	return OrderTabs[s.Tab]
}

// Visible órdenes filtradas por número, cliente o tienda.
func (s *Orders) Visible() []entity.Order {
	return listing.Filter(s.Orders.Data, s.Search, func(o entity.Order) []string {
		return []string{o.OrderNumber, o.CustomerName, o.StoreName}
	})
}

func (s *Orders) Select(id string) error {
	return s.env.Router.Navigate(navigation.OrderDetail, id)
}

func (s *Orders) load() listing.Pending {
	q := dto.OrderQuery{Status: s.Status()}
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Orders, func(ctx context.Context) ([]entity.Order, error) {
		return api.Orders(ctx, q)
	}, s.env.failer("load orders"))
}

// OrderDetail detalle de una orden con exportación a PDF.
type OrderDetail struct {
	env     *Env
	Order   listing.Resource[*entity.OrderDetail]
	Missing bool
	// Exporting hay una exportación en curso.
	Exporting bool
}

func NewOrderDetail(env *Env) *OrderDetail { return &OrderDetail{env: env} }

func (s *OrderDetail) View() navigation.View   { return navigation.OrderDetail }
func (s *OrderDetail) Parent() navigation.View { return navigation.Orders }
func (s *OrderDetail) Leave()                  { s.Order.Cancel() }

func (s *OrderDetail) Mount() listing.Pending {
	id := s.env.Router.State().OrderID
	s.Missing = id == ""
	if s.Missing {
		s.Order.Reset()
		return nil
	}
	if s.Order.Data != nil && s.Order.Data.ID != id {
		s.Order.Reset()
	}
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Order, func(ctx context.Context) (*entity.OrderDetail, error) {
		return api.Order(ctx, id)
	}, s.env.failer("load order"))
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ExportPDF escribe el comprobante de la orden cargada en ExportDir.
func (s *OrderDetail) ExportPDF() listing.Pending {
	order := s.Order.Data
	if order == nil || s.Exporting || s.env.Receipts == nil {
		return nil
	}
	s.Exporting = true
	dir := s.env.ExportDir
	ctx := s.env.Ctx
	receipts := s.env.Receipts
	return func() listing.Commit {
		path, err := writeReceipt(ctx, receipts.OrderReceipt, order, dir)
		return func() listing.Pending {
			s.Exporting = false
			if err != nil {
				s.env.Fail("export order pdf", err)
				return nil
			}
			s.env.Log.Info().Str("path", path).Str("order", order.OrderNumber).Msg("comprobante exportado")
			s.env.Notify.Success("Receipt saved to " + path)
			return nil
		}
	}
}

func writeReceipt(ctx context.Context, render func(context.Context, *entity.OrderDetail) ([]byte, error), order *entity.OrderDetail, dir string) (string, error) {
	doc, err := render(ctx, order)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: crear directorio: %w", err)
	}
	name := unsafeFileChars.ReplaceAllString(order.OrderNumber, "_")
	if name == "" {
		name = unsafeFileChars.ReplaceAllString(order.ID, "_")
	}
	path := filepath.Join(dir, "order-"+name+".pdf")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("export: escribir %s: %w", path, err)
	}
	return path, nil
}
