package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
)

var titles = map[navigation.View]string{
	navigation.Dashboard:      "Dashboard",
	navigation.Inventory:      "Global Inventory",
	navigation.ProductDetail:  "Product Details",
	navigation.Orders:         "Orders",
	navigation.OrderDetail:    "Order Details",
	navigation.Analytics:      "Analytics",
	navigation.StoreDirectory: "Store Directory",
	navigation.StoreInsight:   "Store Insight",
	navigation.StoreStock:     "Store Stock",
	navigation.StoreStaff:     "Staff Management",
	navigation.StoreSettings:  "Store Settings",
	navigation.Profile:        "Profile",
}

func (m *Model) View() string {
	var body string
	if !m.authed {
		body = m.viewLogin()
	} else {
		body = m.viewScreen()
	}
	if d, open := m.env.Notify.Dialog(); open {
		body = modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(d.Title),
			"",
			d.Message,
			"",
			focusedButton.Render(d.ConfirmLabel+" (y)")+"  "+buttonStyle.Render("Cancel (n)"),
		))
	}

	parts := []string{m.header(), body}
	if t, ok := m.env.Notify.Toast(); ok {
		parts = append(parts, toastStyle(t.Kind).Render(t.Message))
	}
	parts = append(parts, m.help.ShortHelpView(m.bindings()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) header() string {
	if !m.authed {
		return headerStyle.Render("Sultan · Super Admin")
	}
	title := headerStyle.Render(titles[m.mounted.View])
	if u, ok := m.env.Session.User(); ok {
		title += " " + mutedStyle.Render(u.Name)
	}
	return title
}

func (m *Model) viewScreen() string {
	switch m.mounted.View {
	case navigation.Dashboard:
		return m.viewDashboard()
	case navigation.Inventory:
		return m.viewInventory()
	case navigation.ProductDetail:
		return m.viewProduct()
	case navigation.Orders:
		return m.viewOrders()
	case navigation.OrderDetail:
		return m.viewOrder()
	case navigation.Analytics:
		return m.viewAnalytics()
	case navigation.StoreDirectory:
		return m.viewStores()
	case navigation.StoreInsight:
		return m.viewStoreInsight()
	case navigation.StoreStock:
		return m.viewStock()
	case navigation.StoreStaff:
		return m.viewStaff()
	case navigation.StoreSettings:
		return m.viewSettings()
	case navigation.Profile:
		return m.viewProfile()
	}
	return ""
}

// bindings ayuda contextual del pie.
func (m *Model) bindings() []key.Binding {
	if _, open := m.env.Notify.Dialog(); open {
		return []key.Binding{keys.Accept, keys.Cancel}
	}
	if f := m.form(); f != nil {
		out := []key.Binding{keys.Next, keys.Submit}
		if f.close != nil || m.authed {
			out = append(out, keys.Back)
		}
		return append(out, keys.Quit)
	}
	out := []key.Binding{keys.Up, keys.Down, keys.Select}
	switch m.mounted.View {
	case navigation.Dashboard:
		out = append(out, keys.Period, keys.Shortcut, keys.Profile)
	case navigation.Orders:
		out = append(out, keys.TabLeft, keys.TabRight, keys.Search)
	case navigation.OrderDetail:
		out = []key.Binding{keys.Export}
	case navigation.StoreInsight:
		out = append(out, keys.Shortcut)
	case navigation.StoreStock:
		out = append(out, keys.Search, keys.Sort)
	case navigation.StoreStaff:
		out = append(out, keys.Add, keys.Remove)
	case navigation.Inventory, navigation.StoreDirectory:
		out = append(out, keys.Search)
	case navigation.ProductDetail, navigation.Analytics:
		out = nil
	}
	return append(out, keys.Reload, keys.Back, keys.Quit)
}

// renderForm pinta los campos con el foco y los errores por campo.
func (m *Model) renderForm(f *form) string {
	var b strings.Builder
	for i, fl := range f.fields {
		focused := i == m.focus && f.id == m.formID
		switch {
		case fl.text != nil:
			val := *fl.text
			if fl.secret {
				val = masked(val)
			}
			if focused {
				val = m.input.View()
			} else if val == "" {
				val = mutedStyle.Render("—")
			}
			b.WriteString(pointer(focused) + labelStyle.Render(fl.label) + val + "\n")
		case fl.value != nil:
			val := fl.value()
			if focused {
				val = selectedStyle.Render("‹ " + val + " ›")
			}
			b.WriteString(pointer(focused) + labelStyle.Render(fl.label) + val + "\n")
		default:
			st := buttonStyle
			if focused {
				st = focusedButton
			}
			b.WriteString(st.Render(fl.label) + "\n")
		}
		if msg, ok := f.errs[fl.key]; ok && fl.key != "" {
			b.WriteString("  " + errorStyle.Render(msg) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func pointer(on bool) string {
	if on {
		return selectedStyle.Render("› ")
	}
	return "  "
}

// row línea de lista con el marcador de selección.
func row(selected bool, cols ...string) string {
	line := strings.Join(cols, "  ")
	if selected {
		return selectedStyle.Render("› " + line)
	}
	return "  " + line
}

// cell ajusta s a w columnas de ancho visible.
func cell(s string, w int) string {
	return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
}

// state texto de carga, error o vacío; "" si hay datos que pintar.
func (m *Model) state(loading bool, err error, n int, empty string) string {
	switch {
	case n > 0:
		return ""
	case loading:
		return m.spinner.View() + " Loading…"
	case err != nil:
		return errorStyle.Render("Could not load data. Press r to retry.")
	}
	return mutedStyle.Render(empty)
}

func section(title, body string) string {
	return titleStyle.Render(title) + "\n" + body
}

func kv(label, value string) string {
	return labelStyle.Render(label) + value
}

func missing(what string) string {
	return mutedStyle.Render(fmt.Sprintf("No %s selected", what))
}
