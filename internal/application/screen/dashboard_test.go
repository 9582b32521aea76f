package screen_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/api"
)

func orders(n int) []entity.Order {
	out := make([]entity.Order, n)
	for i := range out {
		out[i] = entity.Order{ID: string(rune('a' + i)), OrderNumber: "ORD-" + string(rune('A'+i))}
	}
	return out
}

func TestDashboard_CargaConjunta(t *testing.T) {
	var periods []string
	var limits []int
	fx := newFixture(t, &fakeAPI{
		dashboard: func(p string) (*entity.Dashboard, error) {
			periods = append(periods, p)
			return &entity.Dashboard{Period: p, KPIs: entity.DashboardKPI{TotalRevenue: decimal.NewFromInt(1000), TotalOrders: 12}}, nil
		},
		orders: func(q dto.OrderQuery) ([]entity.Order, error) {
			limits = append(limits, q.Limit)
			return orders(8), nil
		},
	})
	d := screen.NewDashboard(fx.env)
	fx.drain(d.Mount())

	require.NotNil(t, d.Data.Data.Summary)
	assert.Equal(t, entity.PeriodToday, d.Data.Data.Summary.Period)
	assert.Len(t, d.Data.Data.Recent, screen.RecentOrdersLimit)
	assert.Equal(t, []int{screen.RecentOrdersLimit}, limits)

	fx.drain(d.CyclePeriod())
	fx.drain(d.CyclePeriod())
	fx.drain(d.CyclePeriod())
	fx.drain(d.CyclePeriod())
	assert.Equal(t, []string{"today", "week", "month", "year", "today"}, periods)
}

func TestDashboard_ErrorConservaDatosYMuestraToast(t *testing.T) {
	fail := false
	fx := newFixture(t, &fakeAPI{
		dashboard: func(p string) (*entity.Dashboard, error) {
			if fail {
				return nil, &api.Error{Kind: api.KindServer, Status: 500, Message: "Something went wrong"}
			}
			return &entity.Dashboard{Period: p}, nil
		},
		orders: func(dto.OrderQuery) ([]entity.Order, error) { return orders(2), nil },
	})
	d := screen.NewDashboard(fx.env)
	fx.drain(d.Mount())
	fail = true
	fx.drain(d.CyclePeriod())

	assert.Equal(t, entity.PeriodToday, d.Data.Data.Summary.Period, "conserva el snapshot previo")
	assert.Error(t, d.Data.Err)
	toast := fx.toast(t)
	assert.Equal(t, notify.Error, toast.Kind)
	assert.Equal(t, "Something went wrong", toast.Message)
}

func TestDashboard_Accesos(t *testing.T) {
	fx := newFixture(t, &fakeAPI{})
	d := screen.NewDashboard(fx.env)
	for _, v := range screen.Shortcuts {
		require.NoError(t, d.Open(v))
		assert.Equal(t, v, fx.router.Current())
	}
	require.NoError(t, d.SelectOrder("o-7"))
	assert.Equal(t, navigation.OrderDetail, fx.router.Current())
	assert.Equal(t, "o-7", fx.router.State().OrderID)
}
