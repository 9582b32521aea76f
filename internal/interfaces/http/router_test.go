package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/backoffice"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/memory"
	apphttp "github.com/videeinfotech/sultan-super-admin-app/internal/interfaces/http"
)

const (
	adminEmail    = "admin@sultan.com"
	adminPassword = "password"
	base          = "/api/v1/super-admin"
)

// newStubApp arma el backend stub completo sobre datos sembrados y da de alta al administrador.
func newStubApp(t *testing.T) *fiber.App {
	t.Helper()
	db := memory.NewDB()
	memory.Seed(db, time.Now())
	stock := memory.NewStockRepository(db)
	orders := memory.NewOrderRepository(db)
	stores := memory.NewStoreRepository(db)

	authUC := backoffice.NewAuthUseCase(memory.NewUserRepository(db), backoffice.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	_, err := authUC.RegisterUser(backoffice.RegisterInput{Name: "Alex Morgan", Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: backoffice.NewCatalogUseCase(memory.NewProductRepository(db), stock, orders, stores, memory.NewAnalyticsRepository(db)),
		StoreUC:   backoffice.NewStoreUseCase(stores, stock, orders, memory.NewStaffRepository(db)),
		Avatars:   memory.NewAvatarStore(),
		JWTSecret: testJWTSecret,
	})
	return app
}

type envelopeBody struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelopeBody) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelopeBody
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, base+"/login", "", map[string]string{
		"email": adminEmail, "password": adminPassword,
	})
	require.Equal(t, http.StatusOK, status)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas_422(t *testing.T) {
	app := newStubApp(t)

	status, env := call(t, app, http.MethodPost, base+"/login", "", map[string]string{
		"email": adminEmail, "password": "wrong",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"These credentials do not match our records."}, env.Errors["email"])

	status, env = call(t, app, http.MethodPost, base+"/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
}

func TestRutasProtegidas_SinToken_401(t *testing.T) {
	app := newStubApp(t)

	status, env := call(t, app, http.MethodGet, base+"/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthenticated.", env.Message)
}

func TestUserYPerfil(t *testing.T) {
	app := newStubApp(t)
	token := login(t, app)

	status, env := call(t, app, http.MethodGet, base+"/user", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), adminEmail)
	assert.NotContains(t, string(env.Data), "password")

	status, env = call(t, app, http.MethodPut, base+"/profile", token, map[string]string{
		"name": "Alex M.", "email": adminEmail, "phone": "+1 555 0101",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Alex M.")

	status, env = call(t, app, http.MethodPut, base+"/password", token, map[string]string{
		"current_password": "wrong", "password": "new-password", "password_confirmation": "new-password",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "current_password")

	status, env = call(t, app, http.MethodPut, base+"/password", token, map[string]string{
		"current_password": adminPassword, "password": "new-password", "password_confirmation": "other",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "password_confirmation")
}

func TestUploadAvatar(t *testing.T) {
	app := newStubApp(t)
	token := login(t, app)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	upload := func(filename string, content []byte) *http.Response {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("avatar", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, base+"/avatar", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := upload("me.PNG", png)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelopeBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var out struct {
		AvatarURL string `json:"avatar_url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Contains(t, out.AvatarURL, "/avatars/")
	assert.Contains(t, out.AvatarURL, ".png")

	bad := upload("notes.txt", []byte("plain text, not an image"))
	defer bad.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, bad.StatusCode)
}

// ── Catálogo y órdenes ───────────────────────────────────────────────────────

func TestProductsYOrders(t *testing.T) {
	app := newStubApp(t)
	token := login(t, app)

	status, env := call(t, app, http.MethodGet, base+"/products?search=footwear&limit=2", token, nil)
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Items []map[string]any `json:"items"`
		Page  struct {
			Total int `json:"total"`
		} `json:"page"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Page.Total)

	status, _ = call(t, app, http.MethodGet, base+"/products?limit=500", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = call(t, app, http.MethodGet, base+"/products/nope", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = call(t, app, http.MethodGet, base+"/orders?status=Pending", token, nil)
	require.Equal(t, http.StatusOK, status)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-9420", orders[0]["order_number"])

	status, env = call(t, app, http.MethodGet, base+"/orders/9420", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "payment_method")

	status, _ = call(t, app, http.MethodGet, base+"/dashboard?period=decade", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

// ── Tiendas, stock y personal ────────────────────────────────────────────────

func TestStockPatch(t *testing.T) {
	app := newStubApp(t)
	token := login(t, app)

	status, env := call(t, app, http.MethodPatch, base+"/stores/1/stock/6", token, map[string]int{"quantity": 25})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"qty":25`)

	status, env = call(t, app, http.MethodPatch, base+"/stores/1/stock/6", token, map[string]int{"quantity": -3})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "quantity")
}

func TestStaffCRUD(t *testing.T) {
	app := newStubApp(t)
	token := login(t, app)

	status, env := call(t, app, http.MethodPost, base+"/staff", token, map[string]any{
		"store_id": "1", "name": "Ana Ruiz", "email": "sarah.jenkins@sultan.com", "role": "Sales Associate",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, []string{"The email has already been taken."}, env.Errors["email"])

	status, env = call(t, app, http.MethodPost, base+"/staff", token, map[string]any{
		"store_id": "1", "name": "Ana Ruiz", "email": "ana@sultan.com", "role": "Sales Associate", "active": true,
	})
	require.Equal(t, http.StatusCreated, status)
	var member struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &member))

	status, _ = call(t, app, http.MethodPut, base+"/staff/"+member.ID, token, map[string]any{
		"store_id": "1", "name": "Ana Ruiz", "email": "ana@sultan.com", "role": "Store Manager", "status": "On Break",
	})
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodDelete, base+"/staff/"+member.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, env = call(t, app, http.MethodGet, base+"/staff?store_id=1", token, nil)
	require.Equal(t, http.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 5)
}

func TestUpdateStore(t *testing.T) {
	app := newStubApp(t)
	token := login(t, app)

	status, env := call(t, app, http.MethodPut, base+"/stores/3", token, map[string]any{
		"name": "Lakeside Plaza", "location": "Chicago, IL", "status": "Open",
		"settings":    map[string]any{"low_stock_threshold": 8},
		"permissions": map[string]bool{"inventory": true, "orders": true},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"low_stock_threshold":8`)

	status, env = call(t, app, http.MethodPut, base+"/stores/3", token, map[string]any{
		"name": "Lakeside Plaza", "location": "Chicago, IL", "status": "Demolished",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "status")
}
