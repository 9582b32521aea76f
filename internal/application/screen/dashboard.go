package screen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// RecentOrdersLimit órdenes recientes del dashboard.
const RecentOrdersLimit = 5

// DashboardData KPIs y órdenes recientes, aplicados juntos.
type DashboardData struct {
	Summary *entity.Dashboard
	Recent  []entity.Order
}

// Shortcuts accesos directos a módulos desde el dashboard.
var Shortcuts = []navigation.View{
	navigation.Inventory, navigation.Orders, navigation.StoreDirectory, navigation.Analytics,
}

// Dashboard pantalla principal.
type Dashboard struct {
	env    *Env
	Period string
	Data   listing.Resource[DashboardData]
}

func NewDashboard(env *Env) *Dashboard {
	return &Dashboard{env: env, Period: entity.PeriodToday}
}

func (d *Dashboard) View() navigation.View   { return navigation.Dashboard }
func (d *Dashboard) Parent() navigation.View { return navigation.Dashboard }
func (d *Dashboard) Leave()                  { d.Data.Cancel() }

func (d *Dashboard) Mount() listing.Pending { return d.load() }

// CyclePeriod avanza today → week → month → year → today y recarga.
func (d *Dashboard) CyclePeriod() listing.Pending {
	i := 0
	for j, p := range entity.Periods {
		if p == d.Period {
			i = j
			break
		}
	}
	d.Period = entity.Periods[(i+1)%len(entity.Periods)]
	return d.load()
}

// Open navega a un acceso directo.
func (d *Dashboard) Open(view navigation.View) error {
	return d.env.Router.Navigate(view, "")
}

// SelectOrder abre el detalle de una orden reciente.
func (d *Dashboard) SelectOrder(id string) error {
	return d.env.Router.Navigate(navigation.OrderDetail, id)
}

func (d *Dashboard) load() listing.Pending {
	period := d.Period
	api := d.env.API
	return listing.Fetch(d.env.Ctx, &d.Data, func(ctx context.Context) (DashboardData, error) {
		var out DashboardData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			s, err := api.Dashboard(gctx, period)
			out.Summary = s
			return err
		})
		g.Go(func() error {
			o, err := api.Orders(gctx, dto.OrderQuery{Limit: RecentOrdersLimit})
			out.Recent = o
			return err
		})
		if err := g.Wait(); err != nil {
			return DashboardData{}, err
		}
		if len(out.Recent) > RecentOrdersLimit {
			out.Recent = out.Recent[:RecentOrdersLimit]
		}
		return out, nil
	}, d.env.failer("load dashboard"))
}
