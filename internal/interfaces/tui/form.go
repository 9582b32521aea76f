package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// field un control del formulario activo: texto (text), selector o casilla (value+toggle)
// o botón (solo submit).
type field struct {
	key    string // clave en FieldErrors
	label  string
	text   *string
	secret bool
	value  func() string
	toggle func()
	submit func() listing.Pending
	// changed se invoca tras cada edición del texto.
	changed func() tea.Cmd
}

type form struct {
	id     string
	fields []field
	errs   listing.FieldErrors
	submit func() listing.Pending
	// close cierra un modal; nil si esc debe volver a la vista padre.
	close func()
}

// form formulario que recibe el teclado ahora mismo, o nil en modo lista.
func (m *Model) form() *form {
	if !m.authed {
		return m.loginForm()
	}
	if m.searching {
		return m.searchForm()
	}
	switch m.mounted.View {
	case navigation.StoreStock:
		if f := m.set.StoreStock.Form; f != nil {
			return m.qtyForm(f)
		}
	case navigation.StoreStaff:
		if f := m.set.StoreStaff.Form; f != nil {
			return m.staffForm(f)
		}
	case navigation.StoreSettings:
		if f := m.set.StoreSettings.Form; f != nil {
			return m.settingsForm(f)
		}
	case navigation.Profile:
		if m.set.Profile.User.Data != nil {
			return m.profileForm()
		}
	}
	return nil
}

func (m *Model) loginForm() *form {
	l := m.set.Login
	return &form{
		id:     "login",
		errs:   l.Fields,
		submit: l.Submit,
		fields: []field{
			{key: "email", label: "Email", text: &l.Email},
			{key: "password", label: "Password", text: &l.Password, secret: true},
			{label: "Sign In"},
		},
	}
}

func (m *Model) searchForm() *form {
	done := func() { m.searching = false }
	f := &form{
		id:     "search",
		submit: func() listing.Pending { done(); return nil },
		close:  done,
	}
	var target *string
	var changed func() tea.Cmd
	switch m.mounted.View {
	case navigation.Inventory:
		target = &m.query
		changed = func() tea.Cmd {
			sc := m.set.Inventory.Type(m.query)
			return tea.Tick(sc.Delay, func(_ time.Time) tea.Msg { return debounceMsg{seq: sc.Seq} })
		}
	case navigation.Orders:
		target = &m.set.Orders.Search
	case navigation.StoreDirectory:
		target = &m.set.StoreDirectory.Search
	case navigation.StoreStock:
		target = &m.set.StoreStock.Search
	default:
		return nil
	}
	f.fields = []field{{label: "Search", text: target, changed: func() tea.Cmd {
		m.cursor = 0
		if changed != nil {
			return changed()
		}
		return nil
	}}}
	return f
}

func (m *Model) qtyForm(f *screen.QtyForm) *form {
	s := m.set.StoreStock
	return &form{
		id:     "qty:" + f.ProductID,
		errs:   f.Fields,
		submit: s.SubmitQty,
		close:  s.CloseForm,
		fields: []field{
			{key: "quantity", label: "Quantity", text: &f.Qty},
			{label: "Save"},
		},
	}
}

func (m *Model) staffForm(f *screen.StaffForm) *form {
	s := m.set.StoreStaff
	id := "staff:new"
	if f.Editing() {
		id = "staff:" + f.ID
	}
	in := &f.Input
	return &form{
		id:     id,
		errs:   f.Fields,
		submit: s.SubmitForm,
		close:  s.CloseForm,
		fields: []field{
			{key: "name", label: "Full name", text: &in.Name},
			{key: "email", label: "Email", text: &in.Email},
			{key: "role", label: "Role", value: func() string { return in.Role }, toggle: func() { cycle(&in.Role, entity.StaffRoles) }},
			{key: "status", label: "Status", value: func() string { return in.Status }, toggle: func() { cycle(&in.Status, shiftStatuses) }},
			{key: "active", label: "Active", value: func() string { return checkbox(in.Active) }, toggle: func() { in.Active = !in.Active }},
			{label: "Save"},
		},
	}
}

var shiftStatuses = []string{entity.ShiftOnShift, entity.ShiftOnBreak, entity.ShiftClockedOut}

func (m *Model) settingsForm(f *screen.SettingsForm) *form {
	s := m.set.StoreSettings
	in := &f.Input
	fields := []field{
		{key: "name", label: "Store name", text: &in.Name},
		{key: "location", label: "Location", text: &in.Location},
		{key: "status", label: "Status", value: func() string { return in.Status }, toggle: s.CycleStatus},
		{key: "low_stock_threshold", label: "Low stock threshold", text: &f.Threshold},
	}
	perms := map[string]*bool{
		"inventory": &in.Permissions.Inventory,
		"orders":    &in.Permissions.Orders,
		"staff":     &in.Permissions.Staff,
		"reports":   &in.Permissions.Reports,
	}
	for _, name := range screen.Permissions {
		flag := perms[name]
		fields = append(fields, field{
			key:    name,
			label:  "Manage " + name,
			value:  func() string { return checkbox(*flag) },
			toggle: func() { s.TogglePermission(name) },
		})
	}
	fields = append(fields,
		field{label: "Save Settings"},
		field{label: "Exit Global Console", submit: func() listing.Pending { s.ExitConsole(); return nil }},
	)
	return &form{id: "settings", errs: f.Fields, submit: s.Save, fields: fields}
}

func (m *Model) profileForm() *form {
	s := m.set.Profile
	errs := listing.FieldErrors{}
	for _, src := range []listing.FieldErrors{s.Info.Fields, s.Password.Fields, s.Avatar.Fields} {
		for k, v := range src {
			errs[k] = v
		}
	}
	info := &s.Info.Input
	pw := &s.Password.Input
	return &form{
		id:   "profile",
		errs: errs,
		fields: []field{
			{key: "name", label: "Full name", text: &info.Name, submit: s.SaveProfile},
			{key: "email", label: "Email", text: &info.Email, submit: s.SaveProfile},
			{key: "phone", label: "Phone", text: &info.Phone, submit: s.SaveProfile},
			{label: "Save Profile", submit: s.SaveProfile},
			{key: "current_password", label: "Current password", text: &pw.CurrentPassword, secret: true, submit: s.SavePassword},
			{key: "password", label: "New password", text: &pw.Password, secret: true, submit: s.SavePassword},
			{key: "password_confirmation", label: "Confirm password", text: &pw.PasswordConfirmation, secret: true, submit: s.SavePassword},
			{label: "Update Password", submit: s.SavePassword},
			{key: "avatar", label: "Avatar file", text: &s.Avatar.Path, submit: s.UploadAvatar},
			{label: "Upload Avatar", submit: s.UploadAvatar},
			{label: "Log Out", submit: func() listing.Pending { s.Logout(); return nil }},
		},
	}
}

// formKey aplica una tecla al formulario activo. handled=false deja que la vista la procese.
func (m *Model) formKey(f *form, msg tea.KeyMsg) (tea.Cmd, bool) {
	n := len(f.fields)
	m.focus = clamp(m.focus, n)
	fl := f.fields[m.focus]
	switch {
	case key.Matches(msg, keys.Back):
		if f.close == nil {
			return nil, false
		}
		f.close()
		return nil, true
	case key.Matches(msg, keys.Submit):
		submit := fl.submit
		if submit == nil {
			submit = f.submit
		}
		if submit == nil {
			return nil, true
		}
		return run(submit()), true
	case key.Matches(msg, keys.Next):
		m.focus = (m.focus + 1) % n
		return nil, true
	case key.Matches(msg, keys.Prev):
		m.focus = (m.focus - 1 + n) % n
		return nil, true
	}
	if fl.text != nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != *fl.text {
			*fl.text = v
			if fl.changed != nil {
				cmd = tea.Batch(cmd, fl.changed())
			}
		}
		return cmd, true
	}
	if fl.toggle != nil && key.Matches(msg, keys.Toggle) {
		fl.toggle()
	}
	return nil, true
}

// bindInput enlaza el textinput al campo de texto enfocado del formulario activo.
func (m *Model) bindInput() {
	f := m.form()
	if f == nil || len(f.fields) == 0 {
		m.formID = ""
		m.unbind()
		return
	}
	if f.id != m.formID {
		m.formID = f.id
		m.focus = 0
		m.unbind()
	}
	m.focus = clamp(m.focus, len(f.fields))
	fl := f.fields[m.focus]
	if fl.text == nil {
		m.unbind()
		return
	}
	if fl.text != m.bound {
		m.bound = fl.text
		m.input.EchoMode = textinput.EchoNormal
		if fl.secret {
			m.input.EchoMode = textinput.EchoPassword
		}
		m.input.Placeholder = fl.label
		m.input.SetValue(*fl.text)
		m.input.CursorEnd()
		m.input.Focus()
		return
	}
	// El controlador puede vaciar el campo (p. ej. la contraseña tras guardar).
	if m.input.Value() != *fl.text {
		m.input.SetValue(*fl.text)
	}
}

func (m *Model) unbind() {
	m.bound = nil
	m.input.Blur()
	m.input.SetValue("")
}

func cycle(v *string, options []string) {
	i := 0
	for j, o := range options {
		if o == *v {
			i = j + 1
			break
		}
	}
	*v = options[i%len(options)]
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func masked(s string) string { return strings.Repeat("•", len([]rune(s))) }
