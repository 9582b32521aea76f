package screen_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/auth"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/tokenstore"
)

// fakeAPI implementa ports.SuperAdminAPI con funciones opcionales y registro de llamadas.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	login          func(dto.LoginRequest) (*dto.LoginResponse, error)
	currentUser    func() (*entity.User, error)
	updateProfile  func(dto.UpdateProfileRequest) (*entity.User, error)
	updatePassword func(dto.UpdatePasswordRequest) error
	uploadAvatar   func(string, []byte) (*dto.AvatarResponse, error)
	dashboard      func(string) (*entity.Dashboard, error)
	products       func(dto.ProductQuery) (*dto.ProductListResponse, error)
	product        func(string) (*entity.Product, error)
	orders         func(dto.OrderQuery) ([]entity.Order, error)
	order          func(string) (*entity.OrderDetail, error)
	analytics      func() (*entity.Analytics, error)
	stores         func() ([]entity.Store, error)
	store          func(string) (*entity.Store, error)
	updateStore    func(string, dto.UpdateStoreRequest) (*entity.Store, error)
	storeStock     func(string) ([]entity.StockItem, error)
	updateStock    func(string, string, int) (*entity.StockItem, error)
	staff          func(string) ([]entity.StaffMember, error)
	addStaff       func(dto.StaffRequest) (*entity.StaffMember, error)
	updateStaff    func(string, dto.StaffRequest) (*entity.StaffMember, error)
	removeStaff    func(string) error
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	f.record("Login")
	return f.login(in)
}

func (f *fakeAPI) CurrentUser(context.Context) (*entity.User, error) {
	f.record("CurrentUser")
	return f.currentUser()
}

func (f *fakeAPI) UpdateProfile(_ context.Context, in dto.UpdateProfileRequest) (*entity.User, error) {
	f.record("UpdateProfile")
	return f.updateProfile(in)
}

func (f *fakeAPI) UpdatePassword(_ context.Context, in dto.UpdatePasswordRequest) error {
	f.record("UpdatePassword")
	return f.updatePassword(in)
}

func (f *fakeAPI) UploadAvatar(_ context.Context, filename string, r io.Reader) (*dto.AvatarResponse, error) {
	f.record("UploadAvatar")
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return f.uploadAvatar(filename, raw)
}

func (f *fakeAPI) Dashboard(_ context.Context, period string) (*entity.Dashboard, error) {
	f.record("Dashboard")
	return f.dashboard(period)
}

func (f *fakeAPI) Products(_ context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	f.record("Products")
	return f.products(q)
}

func (f *fakeAPI) Product(_ context.Context, id string) (*entity.Product, error) {
	f.record("Product")
	return f.product(id)
}

func (f *fakeAPI) Orders(_ context.Context, q dto.OrderQuery) ([]entity.Order, error) {
	f.record("Orders")
	return f.orders(q)
}

func (f *fakeAPI) Order(_ context.Context, id string) (*entity.OrderDetail, error) {
	f.record("Order")
	return f.order(id)
}

func (f *fakeAPI) Analytics(context.Context) (*entity.Analytics, error) {
	f.record("Analytics")
	return f.analytics()
}

func (f *fakeAPI) Stores(context.Context, dto.StoreQuery) ([]entity.Store, error) {
	f.record("Stores")
	return f.stores()
}

func (f *fakeAPI) Store(_ context.Context, id string) (*entity.Store, error) {
	f.record("Store")
	return f.store(id)
}

func (f *fakeAPI) UpdateStore(_ context.Context, id string, in dto.UpdateStoreRequest) (*entity.Store, error) {
	f.record("UpdateStore")
	return f.updateStore(id, in)
}

func (f *fakeAPI) StoreStock(_ context.Context, storeID string) ([]entity.StockItem, error) {
	f.record("StoreStock")
	return f.storeStock(storeID)
}

func (f *fakeAPI) UpdateStoreStock(_ context.Context, storeID, productID string, qty int) (*entity.StockItem, error) {
	f.record("UpdateStoreStock")
	return f.updateStock(storeID, productID, qty)
}

func (f *fakeAPI) Staff(_ context.Context, storeID string) ([]entity.StaffMember, error) {
	f.record("Staff")
	return f.staff(storeID)
}

func (f *fakeAPI) AddStaff(_ context.Context, in dto.StaffRequest) (*entity.StaffMember, error) {
	f.record("AddStaff")
	return f.addStaff(in)
}

func (f *fakeAPI) UpdateStaff(_ context.Context, id string, in dto.StaffRequest) (*entity.StaffMember, error) {
	f.record("UpdateStaff")
	return f.updateStaff(id, in)
}

func (f *fakeAPI) RemoveStaff(_ context.Context, id string) error {
	f.record("RemoveStaff")
	return f.removeStaff(id)
}

// fixture entorno de pruebas con temporizador de toasts manual.
type fixture struct {
	api     *fakeAPI
	env     *screen.Env
	tokens  *tokenstore.MemoryStore
	session *auth.Session
	router  *navigation.Router
	notify  *notify.Service
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

func newFixture(t *testing.T, api *fakeAPI) *fixture {
	t.Helper()
	tokens := tokenstore.NewMemoryStore("")
	session := auth.NewSession(tokens, api, nil)
	router := navigation.NewRouter()
	n := notify.New(notify.WithAfterFunc(func(time.Duration, func()) notify.Timer { return noopTimer{} }))
	env := screen.NewEnv(context.Background(), screen.Deps{
		API:       api,
		Session:   session,
		Router:    router,
		Notify:    n,
		ExportDir: t.TempDir(),
	})
	return &fixture{api: api, env: env, tokens: tokens, session: session, router: router, notify: n}
}

func (f *fixture) toast(t *testing.T) notify.Toast {
	t.Helper()
	toast, ok := f.notify.Toast()
	require.True(t, ok, "se esperaba un toast")
	return toast
}

func (f *fixture) navigate(t *testing.T, v navigation.View, id string) {
	t.Helper()
	require.NoError(t, f.router.Navigate(v, id))
}

// drain ejecuta un Pending y luego el trabajo diferido.
func (f *fixture) drain(p listing.Pending) {
	listing.Drain(p)
	for _, d := range f.env.TakeDeferred() {
		listing.Drain(d)
	}
}
