package tui_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/auth"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/backoffice"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/api"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/memory"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/pdf"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/tokenstore"
	apphttp "github.com/videeinfotech/sultan-super-admin-app/internal/interfaces/http"
	"github.com/videeinfotech/sultan-super-admin-app/internal/interfaces/tui"
)

const (
	adminEmail    = "admin@sultan.com"
	adminPassword = "password"
	jwtSecret     = "tui-test-secret"
)

type harness struct {
	m       *tui.Model
	env     *screen.Env
	set     *screen.Set
	tokens  *tokenstore.MemoryStore
	expired bool
}

// newHarness consola completa contra el backend stub sembrado.
func newHarness(t *testing.T) *harness {
	t.Helper()
	db := memory.NewDB()
	memory.Seed(db, time.Now())
	stock := memory.NewStockRepository(db)
	orders := memory.NewOrderRepository(db)
	stores := memory.NewStoreRepository(db)
	authUC := backoffice.NewAuthUseCase(memory.NewUserRepository(db), backoffice.JWTConfig{
		Secret: jwtSecret, ExpMinutes: 60, Issuer: "tui-test",
	})
	_, err := authUC.RegisterUser(backoffice.RegisterInput{Name: "Alex Morgan", Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: backoffice.NewCatalogUseCase(memory.NewProductRepository(db), stock, orders, stores, memory.NewAnalyticsRepository(db)),
		StoreUC:   backoffice.NewStoreUseCase(stores, stock, orders, memory.NewStaffRepository(db)),
		Avatars:   memory.NewAvatarStore(),
		JWTSecret: jwtSecret,
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	h := &harness{tokens: tokenstore.NewMemoryStore("")}
	client := api.New(api.Options{
		BaseURL:        srv.URL + "/api/v1",
		Tokens:         h.tokens,
		OnUnauthorized: func() { h.expired = true },
	})
	h.env = screen.NewEnv(context.Background(), screen.Deps{
		API:       client,
		Session:   auth.NewSession(h.tokens, client, nil),
		Router:    navigation.NewRouter(),
		Notify:    notify.New(),
		Receipts:  pdf.NewReceiptGenerator("Sultan"),
		Debounce:  time.Millisecond,
		ExportDir: t.TempDir(),
	})
	h.set = screen.NewSet(h.env)
	h.m = tui.New(h.env, h.set)
	h.drain(h.m.Init())
	h.send(tea.WindowSizeMsg{Width: 140, Height: 50})
	return h
}

// drain ejecuta los comandos en línea y reinyecta sus mensajes hasta agotarlos.
func (h *harness) drain(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, spinner.TickMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, next := h.m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func (h *harness) send(msg tea.Msg) {
	_, cmd := h.m.Update(msg)
	h.drain(cmd)
}

func (h *harness) keys(names ...string) {
	for _, k := range names {
		switch k {
		case "enter":
			h.send(tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			h.send(tea.KeyMsg{Type: tea.KeyEsc})
		case "tab":
			h.send(tea.KeyMsg{Type: tea.KeyTab})
		case "down":
			h.send(tea.KeyMsg{Type: tea.KeyDown})
		case "ctrl+u":
			h.send(tea.KeyMsg{Type: tea.KeyCtrlU})
		default:
			h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	h.typeText(adminEmail)
	h.keys("tab")
	h.typeText(adminPassword)
	h.keys("enter")
	require.True(t, h.env.Session.Authenticated(), "login debe abrir sesión")
}

func TestLogin_AbreDashboard(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.m.View(), "Sign In")

	h.login(t)

	assert.Equal(t, navigation.Dashboard, h.env.Router.Current())
	assert.NotEmpty(t, h.tokens.Token())
	view := h.m.View()
	assert.Contains(t, view, "Revenue Trend")
	assert.Contains(t, view, "ORD-9421")
	assert.Empty(t, h.set.Login.Password, "la contraseña se limpia tras el login")
}

func TestLogin_ValidacionLocal(t *testing.T) {
	h := newHarness(t)
	h.keys("enter")

	assert.False(t, h.env.Session.Authenticated())
	assert.NotEmpty(t, h.set.Login.Fields["email"])
	assert.Contains(t, h.m.View(), h.set.Login.Fields["email"])
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	h := newHarness(t)
	h.typeText(adminEmail)
	h.keys("tab")
	h.typeText("wrong-password")
	h.keys("enter")

	assert.False(t, h.env.Session.Authenticated())
	assert.Equal(t, "These credentials do not match our records.", h.set.Login.Fields["email"])
}

func TestInventario_BusquedaYDetalle(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.keys("1")
	require.Equal(t, navigation.Inventory, h.env.Router.Current())
	assert.Len(t, h.set.Inventory.Products.Data, 9)

	h.keys("/")
	h.typeText("sony")
	h.keys("enter")
	require.Len(t, h.set.Inventory.Products.Data, 1)
	assert.Contains(t, h.m.View(), "Sony")

	h.keys("enter")
	require.Equal(t, navigation.ProductDetail, h.env.Router.Current())
	assert.Contains(t, h.m.View(), "Stock Distribution")

	h.keys("esc")
	assert.Equal(t, navigation.Inventory, h.env.Router.Current())
	assert.Equal(t, "sony", h.set.Inventory.Query(), "la búsqueda se conserva al volver")
}

func TestInventario_BusquedaPendienteTrasSalir(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.keys("1")
	require.Len(t, h.set.Inventory.Products.Data, 9)

	h.keys("/")
	// La tecla programa la búsqueda; el tick se entrega después de salir de la vista.
	_, tick := h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("#")})
	h.keys("esc", "esc")
	require.Equal(t, navigation.Dashboard, h.env.Router.Current())

	h.drain(tick)
	assert.False(t, h.set.Inventory.Products.Loading, "sin búsqueda contra la vista desmontada")
	assert.Len(t, h.set.Inventory.Products.Data, 9)

	// Al volver se aplica la consulta escrita.
	h.keys("1")
	assert.Equal(t, "#", h.set.Inventory.Query())
	assert.Empty(t, h.set.Inventory.Products.Data)
}

func TestOrdenes_PestanasYExportacion(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.keys("2")
	require.Equal(t, navigation.Orders, h.env.Router.Current())
	all := len(h.set.Orders.Orders.Data)
	require.NotZero(t, all)

	h.keys("l", "l", "l", "l")
	assert.Equal(t, "Refunded", h.set.Orders.Status())
	for _, o := range h.set.Orders.Orders.Data {
		assert.Equal(t, "Refunded", o.Status)
	}

	h.keys("enter")
	require.Equal(t, navigation.OrderDetail, h.env.Router.Current())
	require.NotNil(t, h.set.OrderDetail.Order.Data)

	h.keys("e")
	files, err := filepath.Glob(filepath.Join(h.env.ExportDir, "order-*.pdf"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	info, err := os.Stat(files[0])
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
	toast, ok := h.env.Notify.Toast()
	require.True(t, ok)
	assert.Equal(t, notify.Success, toast.Kind)
}

func TestStock_ModalDeCantidad(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.keys("3", "enter")
	require.Equal(t, navigation.StoreInsight, h.env.Router.Current())
	h.keys("1")
	require.Equal(t, navigation.StoreStock, h.env.Router.Current())
	target := h.set.StoreStock.Visible()[0]

	h.keys("enter")
	require.NotNil(t, h.set.StoreStock.Form)
	h.keys("ctrl+u")
	h.typeText("abc")
	h.keys("enter")
	require.NotNil(t, h.set.StoreStock.Form, "el modal sigue abierto con error de campo")
	assert.Contains(t, h.m.View(), "whole number")

	h.keys("ctrl+u")
	h.typeText("7")
	h.keys("enter")
	assert.Nil(t, h.set.StoreStock.Form)
	for _, it := range h.set.StoreStock.Items.Data {
		if it.ProductID == target.ProductID {
			assert.Equal(t, 7, it.Qty, "la lista se recarga tras guardar")
		}
	}
}

func TestPersonal_EliminarConConfirmacion(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	h.keys("3", "enter", "2")
	require.Equal(t, navigation.StoreStaff, h.env.Router.Current())
	before := len(h.set.StoreStaff.Staff.Data)
	require.NotZero(t, before)

	h.keys("x")
	_, open := h.env.Notify.Dialog()
	require.True(t, open)
	assert.Contains(t, h.m.View(), "Remove staff member")

	h.keys("n")
	_, open = h.env.Notify.Dialog()
	assert.False(t, open)
	assert.Len(t, h.set.StoreStaff.Staff.Data, before, "cancelar no elimina")

	h.keys("x", "y")
	assert.Len(t, h.set.StoreStaff.Staff.Data, before-1)
	toast, ok := h.env.Notify.Toast()
	require.True(t, ok)
	assert.Equal(t, "Staff member removed", toast.Message)
}

func TestPersonal_AltaConErroresPorCampo(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.keys("3", "enter", "2")
	before := len(h.set.StoreStaff.Staff.Data)

	h.keys("n")
	require.NotNil(t, h.set.StoreStaff.Form)
	h.typeText("Jamie Rivera")
	h.keys("tab")
	h.typeText("not-an-email")
	h.keys("enter")
	require.NotNil(t, h.set.StoreStaff.Form)
	assert.NotEmpty(t, h.set.StoreStaff.Form.Fields["email"])

	h.keys("ctrl+u")
	h.typeText("jamie.rivera@sultan.com")
	h.keys("enter")
	assert.Nil(t, h.set.StoreStaff.Form)
	assert.Len(t, h.set.StoreStaff.Staff.Data, before+1)
}

func TestAjustes_SalirDeLaConsola(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.keys("3", "enter", "3")
	require.Equal(t, navigation.StoreSettings, h.env.Router.Current())
	require.NotNil(t, h.set.StoreSettings.Form)

	// foco en el selector de estado
	h.keys("down", "down", " ")
	assert.Equal(t, "Closed", h.set.StoreSettings.Form.Input.Status)

	for range 7 {
		h.keys("down")
	}
	h.keys("enter")
	assert.False(t, h.env.Session.Authenticated())
	assert.Empty(t, h.tokens.Token())
	assert.Contains(t, h.m.View(), "Sign In")
}

func TestSesionExpirada_VuelveAlLogin(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	require.NoError(t, h.tokens.SetToken("garbage"))

	h.keys("r")
	require.True(t, h.expired, "el cliente dispara el hook del 401")
	_, toast := h.env.Notify.Toast()
	assert.False(t, toast, "el 401 no muestra mensaje")

	h.send(tui.SessionExpiredMsg{})
	assert.False(t, h.env.Session.Authenticated())
	assert.Contains(t, h.m.View(), "Sign In")
}

func TestTodasLasVistasRenderizan(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	for _, v := range navigation.Views {
		require.NoError(t, h.env.Router.Navigate(v, ""))
		h.send(tea.WindowSizeMsg{Width: 140, Height: 50})
		assert.NotEmpty(t, h.m.View(), string(v))
	}
	// sin selección previa de tienda, las vistas de tienda muestran el estado vacío
	assert.True(t, h.set.StoreStock.Missing)
	assert.Contains(t, h.m.View(), "Profile")
}
