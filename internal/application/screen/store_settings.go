package screen

import (
	"strconv"
	"strings"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// StoreStatuses valores del selector de estado.
var StoreStatuses = []string{entity.StoreStatusOpen, entity.StoreStatusClosed, entity.StoreStatusMaintenance}

// SettingsForm edición de ajustes y permisos de la tienda.
type SettingsForm struct {
	Input     dto.UpdateStoreRequest
	Threshold string
	Fields    listing.FieldErrors
	Saving    bool
}

// StoreSettings ajustes de la tienda seleccionada.
type StoreSettings struct {
	storeScoped
	Form *SettingsForm

	at subject
}

func NewStoreSettings(env *Env) *StoreSettings {
	return &StoreSettings{storeScoped: storeScoped{env: env}}
}

func (s *StoreSettings) View() navigation.View   { return navigation.StoreSettings }
func (s *StoreSettings) Parent() navigation.View { return navigation.StoreInsight }
func (s *StoreSettings) Leave()                  { s.Store.Cancel(); s.at.leave() }

func (s *StoreSettings) Mount() listing.Pending {
	s.Form = nil
	s.at.enter(s.StoreID())
	return s.loadStore("load store settings", s.fillForm)
}

// fillForm copia la tienda recién cargada al formulario.
func (s *StoreSettings) fillForm(err error) listing.Pending {
	st := s.Store.Data
	if err != nil || st == nil {
		return nil
	}
	s.Form = &SettingsForm{
		Input: dto.UpdateStoreRequest{
			Name:        st.Name,
			Location:    st.Location,
			Status:      st.Status,
			Settings:    st.Settings,
			Permissions: st.Permissions,
		},
		Threshold: strconv.Itoa(st.Settings.LowStockThreshold),
	}
	return nil
}

// CycleStatus avanza Open → Closed → Maintenance.
func (s *StoreSettings) CycleStatus() {
	if s.Form == nil {
		return
	}
	i := 0
	for j, st := range StoreStatuses {
		if st == s.Form.Input.Status {
			i = j + 1
			break
		}
	}
	s.Form.Input.Status = StoreStatuses[i%len(StoreStatuses)]
}

// Permissions nombres de los permisos en el orden del formulario.
var Permissions = []string{"inventory", "orders", "staff", "reports"}

// TogglePermission invierte un permiso por nombre.
func (s *StoreSettings) TogglePermission(name string) {
	if s.Form == nil {
		return
	}
	p := &s.Form.Input.Permissions
	switch name {
	case "inventory":
		p.Inventory = !p.Inventory
	case "orders":
		p.Orders = !p.Orders
	case "staff":
		p.Staff = !p.Staff
	case "reports":
		p.Reports = !p.Reports
	}
}

// Save envía los ajustes y recarga la tienda.
func (s *StoreSettings) Save() listing.Pending {
	f := s.Form
	id := s.StoreID()
	if f == nil || f.Saving || id == "" {
		return nil
	}
	f.Fields = nil
	n, err := strconv.Atoi(strings.TrimSpace(f.Threshold))
	if err != nil || n < 0 {
		f.Fields = listing.FieldErrors{"low_stock_threshold": "The low stock threshold must be a whole number."}
		return nil
	}
	in := f.Input
	in.Settings.LowStockThreshold = n
	if err := s.env.Validate.Struct(in); err != nil {
		f.Fields = listing.FieldErrorsFrom(err)
		return nil
	}
	f.Saving = true
	api := s.env.API
	ctx := s.env.Ctx
	return func() listing.Commit {
		_, err := api.UpdateStore(ctx, id, in)
		return func() listing.Pending {
			f.Saving = false
			if err != nil {
				if fields := listing.FieldErrorsFrom(err); len(fields) > 0 {
					f.Fields = fields
					return nil
				}
				s.env.Fail("save store settings", err)
				return nil
			}
			s.env.Notify.Success("Settings saved")
			if !s.at.live(id) || s.StoreID() != id {
				return nil
			}
			return s.loadStore("load store settings", s.fillForm)
		}
	}
}

// ExitConsole cierra la sesión ("Exit Global Console").
func (s *StoreSettings) ExitConsole() {
	logout(s.env)
}

// logout cierra la sesión y vuelve al inicio; un fallo de almacenamiento solo se registra.
func logout(env *Env) {
	if err := env.Session.Logout(); err != nil {
		env.Log.Error().Err(err).Msg("logout")
	}
	env.Router.Reset()
}
