package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if _, open := m.env.Notify.Dialog(); open {
		switch {
		case key.Matches(msg, keys.Accept):
			m.env.Notify.Accept()
		case key.Matches(msg, keys.Cancel):
			m.env.Notify.Cancel()
		}
		return nil
	}
	if f := m.form(); f != nil && len(f.fields) > 0 {
		if cmd, handled := m.formKey(f, msg); handled {
			return cmd
		}
	}
	if !m.authed || m.current == nil {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		m.back()
		return nil
	case key.Matches(msg, keys.Reload):
		return run(m.current.Mount())
	case key.Matches(msg, keys.Search) && m.searchable():
		m.searching = true
		return nil
	}

	switch m.mounted.View {
	case navigation.Dashboard:
		return m.dashboardKey(msg)
	case navigation.Inventory:
		items := m.set.Inventory.Products.Data
		return m.listKey(msg, len(items), func(i int) { m.navigate(m.set.Inventory.Select(items[i].ID)) })
	case navigation.Orders:
		s := m.set.Orders
		switch {
		case key.Matches(msg, keys.TabLeft):
			m.cursor = 0
			return run(s.SetTab(s.Tab - 1))
		case key.Matches(msg, keys.TabRight):
			m.cursor = 0
			return run(s.SetTab(s.Tab + 1))
		}
		items := s.Visible()
		return m.listKey(msg, len(items), func(i int) { m.navigate(s.Select(items[i].ID)) })
	case navigation.OrderDetail:
		if key.Matches(msg, keys.Export) {
			return run(m.set.OrderDetail.ExportPDF())
		}
	case navigation.StoreDirectory:
		s := m.set.StoreDirectory
		items := s.Visible()
		return m.listKey(msg, len(items), func(i int) { m.navigate(s.Select(items[i].ID)) })
	case navigation.StoreInsight:
		s := m.set.StoreInsight
		if i, ok := shortcut(msg, len(screen.StoreSections)); ok {
			m.navigate(s.Open(screen.StoreSections[i]))
			return nil
		}
		var recent []string
		if st := s.Store.Data; st != nil {
			for _, o := range st.RecentOrders {
				recent = append(recent, o.ID)
			}
		}
		return m.listKey(msg, len(recent), func(i int) { m.navigate(s.SelectOrder(recent[i])) })
	case navigation.StoreStock:
		s := m.set.StoreStock
		if key.Matches(msg, keys.Sort) {
			m.env.Notify.Info("Sorted by " + s.CycleSort())
			return nil
		}
		items := s.Visible()
		return m.listKey(msg, len(items), func(i int) { s.EditQty(items[i].ProductID) })
	case navigation.StoreStaff:
		s := m.set.StoreStaff
		items := s.Staff.Data
		switch {
		case key.Matches(msg, keys.Add):
			s.OpenAdd()
			return nil
		case key.Matches(msg, keys.Remove):
			if len(items) > 0 {
				s.Remove(items[clamp(m.cursor, len(items))].ID)
			}
			return nil
		}
		return m.listKey(msg, len(items), func(i int) { s.OpenEdit(items[i].ID) })
	}
	return nil
}

func (m *Model) dashboardKey(msg tea.KeyMsg) tea.Cmd {
	d := m.set.Dashboard
	if i, ok := shortcut(msg, len(screen.Shortcuts)); ok {
		m.navigate(d.Open(screen.Shortcuts[i]))
		return nil
	}
	switch {
	case key.Matches(msg, keys.Period):
		return run(d.CyclePeriod())
	case key.Matches(msg, keys.Profile):
		m.navigate(d.Open(navigation.Profile))
		return nil
	}
	recent := d.Data.Data.Recent
	return m.listKey(msg, len(recent), func(i int) { m.navigate(d.SelectOrder(recent[i].ID)) })
}

// listKey mueve el cursor y abre el elemento seleccionado.
func (m *Model) listKey(msg tea.KeyMsg, n int, open func(int)) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		m.move(-1, n)
	case key.Matches(msg, keys.Down):
		m.move(1, n)
	case key.Matches(msg, keys.Select):
		if n > 0 {
			open(clamp(m.cursor, n))
		}
	}
	return nil
}

func (m *Model) searchable() bool {
	switch m.mounted.View {
	case navigation.Inventory, navigation.Orders, navigation.StoreDirectory, navigation.StoreStock:
		return true
	}
	return false
}

// shortcut índice 0-based de una tecla numérica dentro de [1, n].
func shortcut(msg tea.KeyMsg, n int) (int, bool) {
	if !key.Matches(msg, keys.Shortcut) {
		return 0, false
	}
	i, err := strconv.Atoi(msg.String())
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
