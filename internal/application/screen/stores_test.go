package screen_test

import (
	"net/http"
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

func stockItems() []entity.StockItem {
	return []entity.StockItem{
		{ProductID: "p-1", Name: "Wireless Earbuds", SKU: "WE-100", Qty: 5, Price: decimal.NewFromInt(59)},
		{ProductID: "p-2", Name: "apple Watch Band", SKU: "AW-200", Qty: 40, Price: decimal.NewFromInt(19)},
		{ProductID: "p-3", Name: "Nike Air Max", SKU: "NK-270", Qty: 12, Price: decimal.NewFromInt(150)},
	}
}

func names(items []entity.StockItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Directorio e insight
// ─────────────────────────────────────────────────────────────────────────────

func TestStoreDirectory_BusquedaYSeleccion(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		stores: func() ([]entity.Store, error) {
			return []entity.Store{
				{ID: "s-1", Name: "Downtown Branch", Location: "New York, NY"},
				{ID: "s-2", Name: "Westside Mall", Location: "Los Angeles, CA"},
			}, nil
		},
	})
	d := screen.NewStoreDirectory(fx.env)
	fx.drain(d.Mount())

	d.Search = "angeles"
	require.Len(t, d.Visible(), 1)
	require.NoError(t, d.Select(d.Visible()[0].ID))
	assert.Equal(t, navigation.StoreInsight, fx.router.Current())
	assert.Equal(t, "s-2", fx.router.State().StoreID)
}

func TestStoreInsight(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		store: func(id string) (*entity.Store, error) {
			return &entity.Store{ID: id, Name: "Downtown Branch", RecentOrders: []entity.Order{{ID: "o-1"}}}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "s-1")
	si := screen.NewStoreInsight(fx.env)
	fx.drain(si.Mount())
	require.NotNil(t, si.Store.Data)
	assert.Len(t, si.Store.Data.RecentOrders, 1)

	require.NoError(t, si.Open(navigation.StoreStock))
	assert.Equal(t, "s-1", fx.router.State().StoreID, "la tienda sigue seleccionada")
	assert.Equal(t, navigation.StoreInsight, screen.NewStoreStock(fx.env).Parent())
}

// ─────────────────────────────────────────────────────────────────────────────
// Stock
// ─────────────────────────────────────────────────────────────────────────────

func TestStoreStock_OrdenYBusqueda(t *testing.T) {
	fx := newFixture(t, &fakeAPI{storeStock: func(string) ([]entity.StockItem, error) { return stockItems(), nil }})
	fx.navigate(t, navigation.StoreInsight, "s-1")
	s := screen.NewStoreStock(fx.env)
	fx.drain(s.Mount())

	assert.Equal(t, []string{"apple Watch Band", "Nike Air Max", "Wireless Earbuds"}, names(s.Visible()))
	assert.Equal(t, "price", s.CycleSort())
	assert.Equal(t, []string{"Nike Air Max", "Wireless Earbuds", "apple Watch Band"}, names(s.Visible()))
	assert.Equal(t, "qty", s.CycleSort())
	assert.Equal(t, []string{"apple Watch Band", "Nike Air Max", "Wireless Earbuds"}, names(s.Visible()))
	assert.Equal(t, "name", s.CycleSort())

	s.Search = "nk-"
	assert.Equal(t, []string{"Nike Air Max"}, names(s.Visible()))
}

func TestStoreStock_AjusteRecarga(t *testing.T) {
	var patched []int
	fx := newFixture(t, &fakeAPI{
		storeStock: func(string) ([]entity.StockItem, error) { return stockItems(), nil },
		updateStock: func(storeID, productID string, qty int) (*entity.StockItem, error) {
			assert.Equal(t, "s-1", storeID)
			assert.Equal(t, "p-1", productID)
			patched = append(patched, qty)
			return &entity.StockItem{ProductID: productID, Qty: qty}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "s-1")
	s := screen.NewStoreStock(fx.env)
	fx.drain(s.Mount())

	require.True(t, s.EditQty("p-1"))
	assert.Equal(t, "5", s.Form.Qty)
	s.Form.Qty = "25"
	fx.drain(s.SubmitQty())

	assert.Equal(t, []int{25}, patched)
	assert.Nil(t, s.Form)
	assert.Equal(t, 2, fx.api.count("StoreStock"), "recarga tras la mutación")
	assert.Equal(t, notify.Success, fx.toast(t).Kind)
}

func TestStoreStock_CantidadInvalida(t *testing.T) {
	fx := newFixture(t, &fakeAPI{storeStock: func(string) ([]entity.StockItem, error) { return stockItems(), nil }})
	fx.navigate(t, navigation.StoreInsight, "s-1")
	s := screen.NewStoreStock(fx.env)
	fx.drain(s.Mount())

	require.True(t, s.EditQty("p-2"))
	s.Form.Qty = "abc"
	assert.Nil(t, s.SubmitQty())
	assert.Contains(t, s.Form.Fields, "quantity")

	s.Form.Qty = "-3"
	assert.Nil(t, s.SubmitQty())
	assert.Contains(t, s.Form.Fields, "quantity")
	assert.Zero(t, fx.api.count("UpdateStoreStock"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Personal
// ─────────────────────────────────────────────────────────────────────────────

func staffFixture(t *testing.T, add func(dto.StaffRequest) (*entity.StaffMember, error)) (*fixture, *screen.StoreStaff) {
	t.Helper()
	fx := newFixture(t, &fakeAPI{
		staff: func(storeID string) ([]entity.StaffMember, error) {
			return []entity.StaffMember{
				{ID: "st-1", StoreID: storeID, Name: "Sarah Jenkins", Email: "sarah@sultan.com", Role: "Store Manager", Status: entity.ShiftOnShift},
				{ID: "st-2", StoreID: storeID, Name: "David Miller", Email: "david@sultan.com", Role: "Floor Supervisor", Status: entity.ShiftOnBreak},
			}, nil
		},
		addStaff: add,
		updateStaff: func(id string, in dto.StaffRequest) (*entity.StaffMember, error) {
			return &entity.StaffMember{ID: id, Name: in.Name}, nil
		},
		removeStaff: func(string) error { return nil },
	})
	fx.navigate(t, navigation.StoreInsight, "s-1")
	s := screen.NewStoreStaff(fx.env)
	fx.drain(s.Mount())
	return fx, s
}

func TestStoreStaff_ErroresDeCampoMantienenModal(t *testing.T) {
	fx, s := staffFixture(t, func(dto.StaffRequest) (*entity.StaffMember, error) {
		return nil, &api.Error{Kind: api.KindValidation, Status: http.StatusUnprocessableEntity,
			Message: "The given data was invalid.",
			Fields:  map[string][]string{"email": {"The email has already been taken."}}}
	})
	s.OpenAdd()
	s.Form.Input.Name = "Nina"
	s.Form.Input.Email = "sarah@sultan.com"
	fx.drain(s.SubmitForm())

	require.NotNil(t, s.Form, "el modal sigue abierto")
	assert.Equal(t, "The email has already been taken.", s.Form.Fields["email"])
	assert.False(t, s.Form.Saving)
	assert.Equal(t, 1, fx.api.count("Staff"), "sin recarga")
	_, toasted := fx.notify.Toast()
	assert.False(t, toasted)
}

func TestStoreStaff_ValidacionLocal(t *testing.T) {
	fx, s := staffFixture(t, nil)
	s.OpenAdd()
	s.Form.Input.Email = "bad"
	assert.Nil(t, s.SubmitForm())
	assert.Contains(t, s.Form.Fields, "name")
	assert.Contains(t, s.Form.Fields, "email")
	assert.Zero(t, fx.api.count("AddStaff"))
}

func TestStoreStaff_AltaYEdicionRecargan(t *testing.T) {
	var got dto.StaffRequest
	fx, s := staffFixture(t, func(in dto.StaffRequest) (*entity.StaffMember, error) {
		got = in
		return &entity.StaffMember{ID: "st-3", Name: in.Name}, nil
	})
	on, brk, off := s.Counts()
	assert.Equal(t, [3]int{1, 1, 0}, [3]int{on, brk, off})

	s.OpenAdd()
	s.Form.Input.Name = "Nina Park"
	s.Form.Input.Email = "nina@sultan.com"
	fx.drain(s.SubmitForm())
	assert.Nil(t, s.Form)
	assert.Equal(t, "s-1", got.StoreID)
	assert.Equal(t, 2, fx.api.count("Staff"))

	require.True(t, s.OpenEdit("st-2"))
	assert.True(t, s.Form.Editing())
	s.Form.Input.Role = "Store Manager"
	fx.drain(s.SubmitForm())
	assert.Equal(t, 1, fx.api.count("UpdateStaff"))
	assert.Equal(t, 3, fx.api.count("Staff"))
	assert.Equal(t, "Staff member updated", fx.toast(t).Message)
}

func TestStoreStaff_BajaConConfirmacion(t *testing.T) {
	fx, s := staffFixture(t, nil)

	s.Remove("st-1")
	d, ok := fx.notify.Dialog()
	require.True(t, ok)
	assert.Contains(t, d.Message, "Sarah Jenkins")

	fx.notify.Cancel()
	fx.drain(nil)
	assert.Zero(t, fx.api.count("RemoveStaff"))

	s.Remove("st-1")
	fx.notify.Accept()
	fx.drain(nil)
	assert.Equal(t, 1, fx.api.count("RemoveStaff"))
	assert.Equal(t, 2, fx.api.count("Staff"), "recarga tras eliminar")
}

// ─────────────────────────────────────────────────────────────────────────────
// Ajustes
// ─────────────────────────────────────────────────────────────────────────────

func TestStoreSettings_GuardarRecarga(t *testing.T) {
	var sent dto.UpdateStoreRequest
	fx := newFixture(t, &fakeAPI{
		store: func(id string) (*entity.Store, error) {
			return &entity.Store{ID: id, Name: "Downtown Branch", Location: "New York, NY", Status: entity.StoreStatusOpen,
				Settings: entity.StoreSettings{Currency: "USD", LowStockThreshold: 10}}, nil
		},
		updateStore: func(id string, in dto.UpdateStoreRequest) (*entity.Store, error) {
			sent = in
			return &entity.Store{ID: id}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "s-1")
	s := screen.NewStoreSettings(fx.env)
	fx.drain(s.Mount())
	require.NotNil(t, s.Form)
	assert.Equal(t, "10", s.Form.Threshold)

	s.CycleStatus()
	s.TogglePermission("reports")
	s.Form.Threshold = "5"
	fx.drain(s.Save())

	assert.Equal(t, entity.StoreStatusClosed, sent.Status)
	assert.True(t, sent.Permissions.Reports)
	assert.Equal(t, 5, sent.Settings.LowStockThreshold)
	assert.Equal(t, 2, fx.api.count("Store"))
	assert.Equal(t, "Settings saved", fx.toast(t).Message)
}

func TestStoreSettings_ExitConsole(t *testing.T) {
	fx := newFixture(t, &fakeAPI{})
	require.NoError(t, fx.session.Login(entity.User{ID: "u-1"}, "tok"))
	fx.navigate(t, navigation.StoreInsight, "s-1")

	screen.NewStoreSettings(fx.env).ExitConsole()
	assert.False(t, fx.session.Authenticated())
	assert.Empty(t, fx.tokens.Token())
	assert.Equal(t, navigation.State{View: navigation.Dashboard}, fx.router.State())
}

// ─────────────────────────────────────────────────────────────────────────────
// Cambio de tienda con mutaciones en vuelo
// ─────────────────────────────────────────────────────────────────────────────

func staffPerStore(storeID string) ([]entity.StaffMember, error) {
	return []entity.StaffMember{{ID: "m-" + storeID, StoreID: storeID, Name: "staff of " + storeID}}, nil
}

func staffIDs(items []entity.StaffMember) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}

func TestStoreStaff_AltaTardiaNoPisaOtraTienda(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		staff: staffPerStore,
		addStaff: func(in dto.StaffRequest) (*entity.StaffMember, error) {
			return &entity.StaffMember{ID: "new", StoreID: in.StoreID, Name: in.Name}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "A")
	s := screen.NewStoreStaff(fx.env)
	fx.drain(s.Mount())

	s.OpenAdd()
	s.Form.Input.Name = "Nina Park"
	s.Form.Input.Email = "nina@sultan.com"
	commit := s.SubmitForm()()

	s.Leave()
	fx.navigate(t, navigation.StoreInsight, "B")
	loadB := s.Mount()
	assert.Empty(t, s.Staff.Data, "sin filas de A mientras carga B")

	assert.Nil(t, commit(), "el alta de A no recarga sobre B")
	fx.drain(loadB)

	assert.Equal(t, []string{"m-B"}, staffIDs(s.Staff.Data))
	assert.Equal(t, 2, fx.api.count("Staff"))
}

func TestStoreStaff_BajaTardiaNoPisaOtraTienda(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		staff:       staffPerStore,
		removeStaff: func(string) error { return nil },
	})
	fx.navigate(t, navigation.StoreInsight, "A")
	s := screen.NewStoreStaff(fx.env)
	fx.drain(s.Mount())

	s.Remove("m-A")
	fx.notify.Accept()
	deferred := fx.env.TakeDeferred()
	require.Len(t, deferred, 1)
	commit := deferred[0]()

	s.Leave()
	fx.navigate(t, navigation.StoreInsight, "B")
	loadB := s.Mount()
	assert.Nil(t, commit())
	fx.drain(loadB)

	assert.Equal(t, []string{"m-B"}, staffIDs(s.Staff.Data))
	assert.Equal(t, 1, fx.api.count("RemoveStaff"))
	assert.Equal(t, 2, fx.api.count("Staff"))
}

func TestStoreStaff_MismaTiendaSigueRecargando(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		staff: staffPerStore,
		addStaff: func(in dto.StaffRequest) (*entity.StaffMember, error) {
			return &entity.StaffMember{ID: "new"}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "A")
	s := screen.NewStoreStaff(fx.env)
	fx.drain(s.Mount())

	s.OpenAdd()
	s.Form.Input.Name = "Nina Park"
	s.Form.Input.Email = "nina@sultan.com"
	commit := s.SubmitForm()()

	// Salir y volver a la misma tienda: el commit tardío sigue recargando.
	s.Leave()
	fx.drain(s.Mount())
	fx.drain(commit())
	assert.Equal(t, 3, fx.api.count("Staff"))
	assert.Equal(t, []string{"m-A"}, staffIDs(s.Staff.Data))
}

func TestStoreStock_AjusteTardioNoPisaOtraTienda(t *testing.T) {
	var patched []string
	fx := newFixture(t, &fakeAPI{
		storeStock: func(storeID string) ([]entity.StockItem, error) {
			return []entity.StockItem{{ProductID: "p-" + storeID, Name: storeID + " item", Qty: 1}}, nil
		},
		updateStock: func(storeID, productID string, qty int) (*entity.StockItem, error) {
			patched = append(patched, storeID+"/"+productID)
			return &entity.StockItem{ProductID: productID, Qty: qty}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "A")
	s := screen.NewStoreStock(fx.env)
	fx.drain(s.Mount())

	require.True(t, s.EditQty("p-A"))
	s.Form.Qty = "9"
	commit := s.SubmitQty()()

	s.Leave()
	fx.navigate(t, navigation.StoreInsight, "B")
	loadB := s.Mount()
	assert.Nil(t, commit())
	fx.drain(loadB)

	assert.Equal(t, []string{"A/p-A"}, patched)
	require.Len(t, s.Items.Data, 1)
	assert.Equal(t, "p-B", s.Items.Data[0].ProductID)
	assert.Equal(t, 2, fx.api.count("StoreStock"))
}

func TestStoreStock_OtraTiendaDescartaFilasPrevias(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		storeStock: func(storeID string) ([]entity.StockItem, error) {
			if storeID == "B" {
				return nil, &api.Error{Kind: api.KindServer, Status: http.StatusInternalServerError, Message: "boom"}
			}
			return []entity.StockItem{{ProductID: "p-A", Name: "A item", Qty: 3}}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "A")
	s := screen.NewStoreStock(fx.env)
	fx.drain(s.Mount())
	require.Len(t, s.Items.Data, 1)

	s.Leave()
	fx.navigate(t, navigation.StoreInsight, "B")
	loadB := s.Mount()
	assert.True(t, s.Items.Loading)
	assert.Empty(t, s.Items.Data, "mientras carga B")

	fx.drain(loadB)
	assert.Error(t, s.Items.Err)
	assert.Empty(t, s.Items.Data, "tras fallar B")
	assert.False(t, s.EditQty("p-A"), "no se editan filas de otra tienda")
}

func TestStoreStaff_OtraTiendaDescartaFilasPrevias(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		staff: func(storeID string) ([]entity.StaffMember, error) {
			if storeID == "B" {
				return nil, &api.Error{Kind: api.KindServer, Status: http.StatusInternalServerError, Message: "boom"}
			}
			return staffPerStore(storeID)
		},
	})
	fx.navigate(t, navigation.StoreInsight, "A")
	s := screen.NewStoreStaff(fx.env)
	fx.drain(s.Mount())

	s.Leave()
	fx.navigate(t, navigation.StoreInsight, "B")
	fx.drain(s.Mount())
	assert.Empty(t, s.Staff.Data)
	assert.False(t, s.OpenEdit("m-A"))

	// Volver a A recarga sin descartar nada de antemano.
	s.Leave()
	fx.navigate(t, navigation.StoreInsight, "A")
	fx.drain(s.Mount())
	assert.Equal(t, []string{"m-A"}, staffIDs(s.Staff.Data))
}

func TestStoreSettings_GuardadoTardioNoRecargaOtraTienda(t *testing.T) {
	fx := newFixture(t, &fakeAPI{
		store: func(id string) (*entity.Store, error) {
			return &entity.Store{ID: id, Name: "Store " + id, Location: "New York, NY", Status: entity.StoreStatusOpen}, nil
		},
		updateStore: func(id string, in dto.UpdateStoreRequest) (*entity.Store, error) {
			return &entity.Store{ID: id}, nil
		},
	})
	fx.navigate(t, navigation.StoreInsight, "A")
	s := screen.NewStoreSettings(fx.env)
	fx.drain(s.Mount())
	require.NotNil(t, s.Form)
	commit := s.Save()()

	s.Leave()
	fx.navigate(t, navigation.StoreInsight, "B")
	loadB := s.Mount()
	assert.Nil(t, commit())
	fx.drain(loadB)

	require.NotNil(t, s.Store.Data)
	assert.Equal(t, "B", s.Store.Data.ID)
	assert.Equal(t, "Store B", s.Form.Input.Name)
	assert.Equal(t, 2, fx.api.count("Store"))
}
