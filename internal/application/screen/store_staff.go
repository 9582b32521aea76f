package screen

import (
	"context"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// StaffForm modal de alta/edición. ID vacío = alta.
type StaffForm struct {
	ID     string
	Input  dto.StaffRequest
	Fields listing.FieldErrors
	Saving bool
}

// Editing indica si el modal edita un empleado existente.
func (f *StaffForm) Editing() bool { return f.ID != "" }

// StoreStaff personal de la tienda seleccionada.
type StoreStaff struct {
	env     *Env
	Staff   listing.Resource[[]entity.StaffMember]
	Form    *StaffForm
	Missing bool

	at subject
}

func NewStoreStaff(env *Env) *StoreStaff { return &StoreStaff{env: env} }

func (s *StoreStaff) View() navigation.View   { return navigation.StoreStaff }
func (s *StoreStaff) Parent() navigation.View { return navigation.StoreInsight }
func (s *StoreStaff) Leave()                  { s.Staff.Cancel(); s.Form = nil; s.at.leave() }

func (s *StoreStaff) StoreID() string { return s.env.Router.State().StoreID }

func (s *StoreStaff) Mount() listing.Pending {
	id := s.StoreID()
	s.Missing = id == ""
	if s.at.enter(id) || s.Missing {
		s.Staff.Reset()
	}
	if s.Missing {
		return nil
	}
	return s.load(id)
}

// reload recarga la lista si la pantalla sigue montada sobre storeID.
func (s *StoreStaff) reload(storeID string) listing.Pending {
	if !s.at.live(storeID) || s.StoreID() != storeID {
		return nil
	}
	return s.load(storeID)
}

func (s *StoreStaff) load(storeID string) listing.Pending {
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Staff, func(ctx context.Context) ([]entity.StaffMember, error) {
		return api.Staff(ctx, storeID)
	}, s.env.failer("load staff"))
}

// Counts resumen de turnos: en turno, en pausa, fuera.
func (s *StoreStaff) Counts() (onShift, onBreak, off int) {
	for _, m := range s.Staff.Data {
		switch m.Status {
		case entity.ShiftOnShift:
			onShift++
		case entity.ShiftOnBreak:
			onBreak++
		default:
			off++
		}
	}
	return
}

// OpenAdd abre el modal vacío.
func (s *StoreStaff) OpenAdd() {
	s.Form = &StaffForm{Input: dto.StaffRequest{
		StoreID: s.StoreID(),
		Role:    entity.StaffRoles[len(entity.StaffRoles)-2],
		Status:  entity.ShiftClockedOut,
		Active:  true,
	}}
}

// OpenEdit abre el modal con los datos del empleado.
func (s *StoreStaff) OpenEdit(id string) bool {
	for _, m := range s.Staff.Data {
		if m.ID == id {
			s.Form = &StaffForm{ID: m.ID, Input: dto.StaffRequest{
				StoreID: nonEmpty(m.StoreID, s.StoreID()),
				Name:    m.Name,
				Email:   m.Email,
				Role:    m.Role,
				Status:  m.Status,
				Active:  m.Active,
			}}
			return true
		}
	}
	return false
}

func (s *StoreStaff) CloseForm() { s.Form = nil }

// SubmitForm valida y envía el alta o edición. Los errores por campo mantienen el modal
// abierto; en éxito se cierra, se avisa y se recarga la lista.
func (s *StoreStaff) SubmitForm() listing.Pending {
	f := s.Form
	storeID := s.StoreID()
	if f == nil || f.Saving || storeID == "" {
		return nil
	}
	f.Fields = nil
	in := f.Input
	if err := s.env.Validate.Struct(in); err != nil {
		f.Fields = listing.FieldErrorsFrom(err)
		return nil
	}
	f.Saving = true
	api := s.env.API
	ctx := s.env.Ctx
	return func() listing.Commit {
		var err error
		if f.Editing() {
			_, err = api.UpdateStaff(ctx, f.ID, in)
		} else {
			_, err = api.AddStaff(ctx, in)
		}
		return func() listing.Pending {
			f.Saving = false
			if err != nil {
				if fields := listing.FieldErrorsFrom(err); len(fields) > 0 {
					f.Fields = fields
					return nil
				}
				s.env.Fail("save staff", err)
				return nil
			}
			if s.Form == f {
				s.Form = nil
			}
			if f.Editing() {
				s.env.Notify.Success("Staff member updated")
			} else {
				s.env.Notify.Success("Staff member added")
			}
			return s.reload(storeID)
		}
	}
}

// Remove pide confirmación; al aceptar elimina y recarga (trabajo diferido vía Env).
func (s *StoreStaff) Remove(id string) {
	name := id
	for _, m := range s.Staff.Data {
		if m.ID == id {
			name = m.Name
			break
		}
	}
	storeID := s.StoreID()
	s.env.Notify.Confirm(notify.ConfirmOptions{
		Title:        "Remove staff member",
		Message:      "Remove " + name + " from this store?",
		ConfirmLabel: "Remove",
		OnConfirm: func() {
			s.env.Defer(s.remove(storeID, id))
		},
	})
}

func (s *StoreStaff) remove(storeID, id string) listing.Pending {
	api := s.env.API
	ctx := s.env.Ctx
	return func() listing.Commit {
		err := api.RemoveStaff(ctx, id)
		return func() listing.Pending {
			if err != nil {
				s.env.Fail("remove staff", err)
				return nil
			}
			s.env.Notify.Success("Staff member removed")
			return s.reload(storeID)
		}
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
