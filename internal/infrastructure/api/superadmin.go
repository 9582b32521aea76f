package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

const prefix = "/super-admin"

func idPath(parts ...string) string {
	p := prefix
	for _, s := range parts {
		p += "/" + url.PathEscape(s)
	}
	return p
}

// ── Auth y perfil ─────────────────────────────────────────────────────────────

// Login POST /super-admin/login.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	env, err := c.Request(ctx, http.MethodPost, prefix+"/login", RequestOptions{Body: in})
	if err != nil {
		return nil, err
	}
	return decode[dto.LoginResponse](c, env)
}

// CurrentUser GET /super-admin/user.
func (c *Client) CurrentUser(ctx context.Context) (*entity.User, error) {
	env, err := c.Request(ctx, http.MethodGet, prefix+"/user", RequestOptions{})
	if err != nil {
		return nil, err
	}
	return decode[entity.User](c, env)
}

// UpdateProfile PUT /super-admin/profile.
func (c *Client) UpdateProfile(ctx context.Context, in dto.UpdateProfileRequest) (*entity.User, error) {
	env, err := c.Request(ctx, http.MethodPut, prefix+"/profile", RequestOptions{Body: in})
	if err != nil {
		return nil, err
	}
	return decode[entity.User](c, env)
}

// UpdatePassword PUT /super-admin/password.
func (c *Client) UpdatePassword(ctx context.Context, in dto.UpdatePasswordRequest) error {
	_, err := c.Request(ctx, http.MethodPut, prefix+"/password", RequestOptions{Body: in})
	return err
}

// UploadAvatar POST /super-admin/avatar (multipart, campo "avatar").
func (c *Client) UploadAvatar(ctx context.Context, filename string, r io.Reader) (*dto.AvatarResponse, error) {
	env, err := c.Request(ctx, http.MethodPost, prefix+"/avatar", RequestOptions{
		Multipart: &Multipart{Field: "avatar", Filename: filename, Reader: r},
	})
	if err != nil {
		return nil, err
	}
	return decode[dto.AvatarResponse](c, env)
}

// ── Catálogo, órdenes y analítica ─────────────────────────────────────────────

// Dashboard GET /super-admin/dashboard?period=.
func (c *Client) Dashboard(ctx context.Context, period string) (*entity.Dashboard, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	env, err := c.Request(ctx, http.MethodGet, prefix+"/dashboard", RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	return decode[entity.Dashboard](c, env)
}

// Products GET /super-admin/products?search=&limit=&offset=.
func (c *Client) Products(ctx context.Context, in dto.ProductQuery) (*dto.ProductListResponse, error) {
	q := url.Values{}
	q.Set("search", in.Search)
	if in.Limit > 0 {
		q.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Offset > 0 {
		q.Set("offset", strconv.Itoa(in.Offset))
	}
	env, err := c.Request(ctx, http.MethodGet, prefix+"/products", RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	return decode[dto.ProductListResponse](c, env)
}

// Product GET /super-admin/products/{id}.
func (c *Client) Product(ctx context.Context, id string) (*entity.Product, error) {
	env, err := c.Request(ctx, http.MethodGet, idPath("products", id), RequestOptions{})
	if err != nil {
		return nil, err
	}
	return decode[entity.Product](c, env)
}

// Orders GET /super-admin/orders.
func (c *Client) Orders(ctx context.Context, in dto.OrderQuery) ([]entity.Order, error) {
	q := url.Values{}
	if in.Status != "" {
		q.Set("status", in.Status)
	}
	if in.StoreID != "" {
		q.Set("store_id", in.StoreID)
	}
	if in.Limit > 0 {
		q.Set("limit", strconv.Itoa(in.Limit))
	}
	env, err := c.Request(ctx, http.MethodGet, prefix+"/orders", RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Order](c, env)
}

// Order GET /super-admin/orders/{id}.
func (c *Client) Order(ctx context.Context, id string) (*entity.OrderDetail, error) {
	env, err := c.Request(ctx, http.MethodGet, idPath("orders", id), RequestOptions{})
	if err != nil {
		return nil, err
	}
	return decode[entity.OrderDetail](c, env)
}

// Analytics GET /super-admin/analytics.
func (c *Client) Analytics(ctx context.Context) (*entity.Analytics, error) {
	env, err := c.Request(ctx, http.MethodGet, prefix+"/analytics", RequestOptions{})
	if err != nil {
		return nil, err
	}
	return decode[entity.Analytics](c, env)
}

// ── Tiendas, stock y personal ─────────────────────────────────────────────────

// Stores GET /super-admin/stores.
func (c *Client) Stores(ctx context.Context, in dto.StoreQuery) ([]entity.Store, error) {
	q := url.Values{}
	if in.Search != "" {
		q.Set("search", in.Search)
	}
	if in.Status != "" {
		q.Set("status", in.Status)
	}
	env, err := c.Request(ctx, http.MethodGet, prefix+"/stores", RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Store](c, env)
}

// Store GET /super-admin/stores/{id}.
func (c *Client) Store(ctx context.Context, id string) (*entity.Store, error) {
	env, err := c.Request(ctx, http.MethodGet, idPath("stores", id), RequestOptions{})
	if err != nil {
		return nil, err
	}
	return decode[entity.Store](c, env)
}

// UpdateStore PUT /super-admin/stores/{id}.
func (c *Client) UpdateStore(ctx context.Context, id string, in dto.UpdateStoreRequest) (*entity.Store, error) {
	env, err := c.Request(ctx, http.MethodPut, idPath("stores", id), RequestOptions{Body: in})
	if err != nil {
		return nil, err
	}
	return decode[entity.Store](c, env)
}

// StoreStock GET /super-admin/stores/{id}/stock.
func (c *Client) StoreStock(ctx context.Context, storeID string) ([]entity.StockItem, error) {
	env, err := c.Request(ctx, http.MethodGet, idPath("stores", storeID, "stock"), RequestOptions{})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.StockItem](c, env)
}

// UpdateStoreStock PATCH /super-admin/stores/{id}/stock/{productId} con {"quantity": n}.
func (c *Client) UpdateStoreStock(ctx context.Context, storeID, productID string, quantity int) (*entity.StockItem, error) {
	env, err := c.Request(ctx, http.MethodPatch, idPath("stores", storeID, "stock", productID), RequestOptions{
		Body: dto.UpdateStockRequest{Quantity: quantity},
	})
	if err != nil {
		return nil, err
	}
	return decode[entity.StockItem](c, env)
}

// Staff GET /super-admin/staff?store_id=.
func (c *Client) Staff(ctx context.Context, storeID string) ([]entity.StaffMember, error) {
	q := url.Values{}
	if storeID != "" {
		q.Set("store_id", storeID)
	}
	env, err := c.Request(ctx, http.MethodGet, prefix+"/staff", RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.StaffMember](c, env)
}

// AddStaff POST /super-admin/staff.
func (c *Client) AddStaff(ctx context.Context, in dto.StaffRequest) (*entity.StaffMember, error) {
	env, err := c.Request(ctx, http.MethodPost, prefix+"/staff", RequestOptions{Body: in})
	if err != nil {
		return nil, err
	}
	return decode[entity.StaffMember](c, env)
}

// UpdateStaff PUT /super-admin/staff/{id}.
func (c *Client) UpdateStaff(ctx context.Context, id string, in dto.StaffRequest) (*entity.StaffMember, error) {
	env, err := c.Request(ctx, http.MethodPut, idPath("staff", id), RequestOptions{Body: in})
	if err != nil {
		return nil, err
	}
	return decode[entity.StaffMember](c, env)
}

// RemoveStaff DELETE /super-admin/staff/{id}.
func (c *Client) RemoveStaff(ctx context.Context, id string) error {
	_, err := c.Request(ctx, http.MethodDelete, idPath("staff", id), RequestOptions{})
	return err
}
