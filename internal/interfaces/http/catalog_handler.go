package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/backoffice"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
)

// CatalogHandler dashboard, productos, órdenes y analítica.
type CatalogHandler struct {
	uc *backoffice.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *backoffice.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Dashboard godoc
// @Summary      KPIs del dashboard
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Param        period  query  string  false  "today, week, month o year"
// @Success      200   {object}  dto.Envelope{data=entity.Dashboard}
// @Failure      401   {object}  dto.Envelope
// @Router       /dashboard [get]
func (h *CatalogHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Query("period"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Products godoc
// @Summary      Catálogo global
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Param        search  query  string  false  "nombre o SKU"
// @Param        limit  query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200   {object}  dto.Envelope{data=dto.ProductListResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	q := dto.ProductQuery{
		Search:      c.Query("search"),
		PageRequest: dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")},
	}
	if err := validate.Struct(q.PageRequest); err != nil {
		return invalid(c, "", nil)
	}
	out, err := h.uc.Products(q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Product godoc
// @Summary      Detalle de producto
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      200   {object}  dto.Envelope{data=entity.Product}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /products/{id} [get]
func (h *CatalogHandler) Product(c *fiber.Ctx) error {
	out, err := h.uc.Product(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Orders godoc
// @Summary      Listar órdenes
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Param        status  query  string  false  "estado"
// @Param        store_id  query  string  false  "tienda"
// @Param        limit  query  int  false  "máximo"
// @Success      200   {object}  dto.Envelope{data=[]entity.Order}
// @Failure      401   {object}  dto.Envelope
// @Router       /orders [get]
func (h *CatalogHandler) Orders(c *fiber.Ctx) error {
	out, err := h.uc.Orders(dto.OrderQuery{
		Status:  c.Query("status"),
		StoreID: c.Query("store_id"),
		Limit:   c.QueryInt("limit"),
	})
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Order godoc
// @Summary      Detalle de orden
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      200   {object}  dto.Envelope{data=entity.OrderDetail}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /orders/{id} [get]
func (h *CatalogHandler) Order(c *fiber.Ctx) error {
	out, err := h.uc.Order(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Analytics godoc
// @Summary      Analítica global
// @Tags         catalog
// @Produce      json
// @Security     Bearer
// @Success      200   {object}  dto.Envelope{data=entity.Analytics}
// @Failure      401   {object}  dto.Envelope
// @Router       /analytics [get]
func (h *CatalogHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics()
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}
