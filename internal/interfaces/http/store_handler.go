package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/backoffice"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
)

// StoreHandler directorio de tiendas, stock y personal.
type StoreHandler struct {
	uc *backoffice.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *backoffice.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List godoc
// @Summary      Directorio de tiendas
// @Tags         stores
// @Produce      json
// @Security     Bearer
// @Param        search  query  string  false  "nombre o ubicación"
// @Param        status  query  string  false  "estado"
// @Success      200   {object}  dto.Envelope{data=[]entity.Store}
// @Failure      401   {object}  dto.Envelope
// @Router       /stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Stores(dto.StoreQuery{Search: c.Query("search"), Status: c.Query("status")})
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Get godoc
// @Summary      Detalle de tienda
// @Tags         stores
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200   {object}  dto.Envelope{data=entity.Store}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /stores/{id} [get]
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Store(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar ajustes de tienda
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tienda"
// @Param        body  body  dto.UpdateStoreRequest  true  "ajustes"
// @Success      200   {object}  dto.Envelope{data=entity.Store}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /stores/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if valid, err := parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.UpdateStore(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(envelope{Success: true, Data: out, Message: "Store updated successfully."})
}

// Stock godoc
// @Summary      Stock de la tienda
// @Tags         stores
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200   {object}  dto.Envelope{data=[]entity.StockItem}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /stores/{id}/stock [get]
func (h *StoreHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// UpdateStock godoc
// @Summary      Ajustar cantidad
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "quantity"
// @Success      200   {object}  dto.Envelope{data=entity.StockItem}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /stores/{id}/stock/{productId} [patch]
func (h *StoreHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if valid, err := parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.UpdateStock(c.Params("id"), c.Params("productId"), in.Quantity)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// Staff godoc
// @Summary      Personal
// @Tags         staff
// @Produce      json
// @Security     Bearer
// @Param        store_id  query  string  false  "tienda"
// @Success      200   {object}  dto.Envelope{data=[]entity.StaffMember}
// @Failure      401   {object}  dto.Envelope
// @Router       /staff [get]
func (h *StoreHandler) Staff(c *fiber.Ctx) error {
	out, err := h.uc.Staff(c.Query("store_id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, out)
}

// AddStaff godoc
// @Summary      Alta de personal
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.StaffRequest  true  "empleado"
// @Success      201   {object}  dto.Envelope{data=entity.StaffMember}
// @Failure      401   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /staff [post]
func (h *StoreHandler) AddStaff(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if valid, err := parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.AddStaff(in)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, out, "Staff member added successfully.")
}

// UpdateStaff godoc
// @Summary      Editar personal
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID del empleado"
// @Param        body  body  dto.StaffRequest  true  "empleado"
// @Success      200   {object}  dto.Envelope{data=entity.StaffMember}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /staff/{id} [put]
func (h *StoreHandler) UpdateStaff(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if valid, err := parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.UpdateStaff(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(envelope{Success: true, Data: out, Message: "Staff member updated successfully."})
}

// RemoveStaff godoc
// @Summary      Baja de personal
// @Tags         staff
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "ID del empleado"
// @Success      204   "sin contenido"
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /staff/{id} [delete]
func (h *StoreHandler) RemoveStaff(c *fiber.Ctx) error {
	if err := h.uc.RemoveStaff(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
