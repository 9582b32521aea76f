package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/format"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

func (m *Model) viewLogin() string {
	l := m.set.Login
	parts := []string{titleStyle.Render("Welcome back"), mutedStyle.Render("Sign in to the global console"), ""}
	if l.Banner != "" {
		parts = append(parts, bannerStyle.Render(l.Banner), "")
	}
	parts = append(parts, m.renderForm(m.loginForm()))
	if l.Submitting {
		parts = append(parts, m.spinner.View()+" Signing in…")
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) viewDashboard() string {
	d := m.set.Dashboard
	data := d.Data.Data
	period := mutedStyle.Render("Period: ") + selectedStyle.Render(d.Period)
	if s := m.state(d.Data.Loading, d.Data.Err, boolCount(data.Summary != nil), "No data"); s != "" {
		return period + "\n\n" + s
	}
	k := data.Summary.KPIs
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		kpi("Revenue", format.Price(k.TotalRevenue), format.Percent(k.RevenueGrowth)),
		kpi("Orders", format.Count(k.TotalOrders), ""),
		kpi("Active Stores", format.Count(k.ActiveStores), ""),
		kpi("Low Stock", format.Count(k.LowStockItems), ""),
	)

	var recent []string
	for i, o := range data.Recent {
		recent = append(recent, row(i == clamp(m.cursor, len(data.Recent)),
			cell(o.OrderNumber, 12), cell(o.CustomerName, 18), cell(format.Price(o.TotalAmount), 12),
			statusStyle(o.Status).Render(o.Status)))
	}
	if len(recent) == 0 {
		recent = []string{mutedStyle.Render("No recent orders")}
	}

	var shortcuts []string
	for i, v := range screen.Shortcuts {
		shortcuts = append(shortcuts, fmt.Sprintf("[%d] %s", i+1, titles[v]))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		period,
		cards,
		section("Revenue Trend", bars(data.Summary.Trend)),
		"",
		section("Recent Orders", strings.Join(recent, "\n")),
		"",
		mutedStyle.Render(strings.Join(shortcuts, "   ")),
	)
}

func kpi(label, value, delta string) string {
	body := mutedStyle.Render(label) + "\n" + titleStyle.Render(value)
	if delta != "" {
		body += " " + mutedStyle.Render(delta)
	}
	return cardStyle.Width(18).Render(body)
}

// bars histograma horizontal de una serie, escalado al máximo.
func bars(points []entity.TrendPoint) string {
	if len(points) == 0 {
		return mutedStyle.Render("No trend data")
	}
	const width = 30
	peak := decimal.Zero
	for _, p := range points {
		if p.Value.GreaterThan(peak) {
			peak = p.Value
		}
	}
	var b strings.Builder
	for _, p := range points {
		n := 0
		if peak.IsPositive() {
			n = int(p.Value.Div(peak).Mul(decimal.NewFromInt(width)).IntPart())
		}
		fmt.Fprintf(&b, "%s %s %s\n", cell(p.Label, 5), barStyle.Render(strings.Repeat("█", n)), mutedStyle.Render(p.Value.String()))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) searchLine(value string) string {
	if m.searching {
		return "Search: " + m.input.View()
	}
	if value == "" {
		return mutedStyle.Render("Press / to search")
	}
	return "Search: " + value
}

func (m *Model) viewInventory() string {
	s := m.set.Inventory
	items := s.Products.Data
	head := m.searchLine(m.query)
	if st := m.state(s.Products.Loading, s.Products.Err, len(items), "No products found"); st != "" {
		return head + "\n\n" + st
	}
	lines := []string{head, mutedStyle.Render(fmt.Sprintf("%s products", format.Count(s.Total))), ""}
	for i, p := range items {
		lines = append(lines, row(i == clamp(m.cursor, len(items)),
			cell(p.Name, 28), cell(p.SKU, 12), cell(format.Count(p.Stock), 8), statusStyle(p.Status).Render(p.Status)))
	}
	if s.Products.Loading {
		lines = append(lines, m.spinner.View())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewProduct() string {
	s := m.set.ProductDetail
	if s.Missing {
		return missing("product")
	}
	p := s.Product.Data
	if st := m.state(s.Product.Loading, s.Product.Err, boolCount(p != nil), "Product not found"); st != "" {
		return st
	}
	lines := []string{
		titleStyle.Render(p.Name),
		kv("SKU", p.SKU),
		kv("Category", p.Category),
		kv("Price", format.Price(p.Price)),
		kv("Total stock", format.Count(p.Stock)),
		kv("Status", statusStyle(p.Status).Render(p.Status)),
	}
	if p.Description != "" {
		lines = append(lines, "", p.Description)
	}
	lines = append(lines, "", titleStyle.Render("Stock Distribution"))
	if len(p.Distribution) == 0 {
		lines = append(lines, mutedStyle.Render("Not stocked in any store"))
	}
	for _, d := range p.Distribution {
		lines = append(lines, "  "+cell(d.StoreName, 24)+format.Count(d.Quantity))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewOrders() string {
	s := m.set.Orders
	var tabs []string
	for i, t := range screen.OrderTabs {
		if i == s.Tab {
			tabs = append(tabs, activeTab.Render(t))
		} else {
			tabs = append(tabs, inactiveTab.Render(t))
		}
	}
	head := lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n" + m.searchLine(s.Search)
	items := s.Visible()
	if st := m.state(s.Orders.Loading, s.Orders.Err, len(items), "No orders found"); st != "" {
		return head + "\n\n" + st
	}
	lines := []string{head, ""}
	for i, o := range items {
		lines = append(lines, row(i == clamp(m.cursor, len(items)),
			cell(o.OrderNumber, 12), cell(o.CustomerName, 18), cell(o.StoreName, 20),
			cell(format.Price(o.TotalAmount), 12), cell(format.Date(o.CreatedAt), 13), statusStyle(o.Status).Render(o.Status)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewOrder() string {
	s := m.set.OrderDetail
	if s.Missing {
		return missing("order")
	}
	o := s.Order.Data
	if st := m.state(s.Order.Loading, s.Order.Err, boolCount(o != nil), "Order not found"); st != "" {
		return st
	}
	lines := []string{
		titleStyle.Render(o.OrderNumber) + "  " + statusStyle(o.Status).Render(o.Status),
		kv("Placed", format.DateTime(o.CreatedAt)),
		kv("Store", o.Store.Name),
		kv("Payment", o.PaymentMethod),
		"",
		titleStyle.Render("Customer"),
		kv("Name", o.Customer.Name),
		kv("Email", o.Customer.Email),
		kv("Phone", o.Customer.Phone),
		kv("Address", o.Customer.Address),
		"",
		titleStyle.Render("Items"),
	}
	for _, it := range o.Items {
		lines = append(lines, "  "+cell(it.Name, 28)+cell("x"+strconv.Itoa(it.Quantity), 6)+format.Price(it.Subtotal))
	}
	lines = append(lines, "",
		kv("Subtotal", format.Price(o.Subtotal)),
		kv("Tax", format.Price(o.Tax)),
		kv("Total", titleStyle.Render(format.Price(o.TotalAmount))),
	)
	if s.Exporting {
		lines = append(lines, "", m.spinner.View()+" Exporting receipt…")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewAnalytics() string {
	s := m.set.Analytics
	a := s.Data.Data
	if st := m.state(s.Data.Loading, s.Data.Err, boolCount(a != nil), "No analytics available"); st != "" {
		return st
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		kpi("Revenue", format.Price(a.TotalRevenue), ""),
		kpi("Avg Order", format.Price(a.AvgOrderValue), ""),
		kpi("Conversion", a.Conversion.StringFixed(1)+"%", ""),
	)
	var stores, products, shares []string
	for _, r := range a.TopStores {
		stores = append(stores, "  "+cell(r.Name, 24)+format.Price(r.Revenue))
	}
	for _, r := range a.TopProducts {
		products = append(products, "  "+cell(r.Name, 28)+cell(format.Count(r.UnitsSold)+" sold", 12)+format.Price(r.Revenue))
	}
	for _, c := range a.CategoryShare {
		shares = append(shares, "  "+cell(c.Category, 16)+c.Percentage.StringFixed(1)+"%")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		section("Revenue", bars(a.Revenue)),
		"",
		section("Top Stores", orNone(stores)),
		"",
		section("Top Products", orNone(products)),
		"",
		section("Sales by Category", orNone(shares)),
	)
}

func (m *Model) viewStores() string {
	s := m.set.StoreDirectory
	head := m.searchLine(s.Search)
	items := s.Visible()
	if st := m.state(s.Stores.Loading, s.Stores.Err, len(items), "No stores found"); st != "" {
		return head + "\n\n" + st
	}
	lines := []string{head, ""}
	for i, st := range items {
		lines = append(lines, row(i == clamp(m.cursor, len(items)),
			cell(st.Name, 24), cell(st.Location, 16), cell(fmt.Sprintf("★ %.1f", st.Rating), 8),
			statusStyle(st.Status).Render(st.Status)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewStoreInsight() string {
	s := m.set.StoreInsight
	if s.Missing {
		return missing("store")
	}
	st := s.Store.Data
	if msg := m.state(s.Store.Loading, s.Store.Err, boolCount(st != nil), "Store not found"); msg != "" {
		return msg
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		kpi("Revenue", format.Money(st.Stats.Revenue, st.Settings.Currency), fmt.Sprintf("%+.1f%%", st.Growth)),
		kpi("Orders", format.Count(st.Stats.TotalOrders), ""),
		kpi("Products", format.Count(st.Stats.TotalProducts), ""),
	)
	var recent []string
	for i, o := range st.RecentOrders {
		recent = append(recent, row(i == clamp(m.cursor, len(st.RecentOrders)),
			cell(o.OrderNumber, 12), cell(o.CustomerName, 18), cell(format.Price(o.TotalAmount), 12),
			statusStyle(o.Status).Render(o.Status)))
	}
	var sections []string
	for i, v := range screen.StoreSections {
		sections = append(sections, fmt.Sprintf("[%d] %s", i+1, titles[v]))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(st.Name)+"  "+statusStyle(st.Status).Render(st.Status),
		mutedStyle.Render(st.Location+ownerSuffix(st.OwnerName)),
		cards,
		section("Recent Orders", orNone(recent)),
		"",
		mutedStyle.Render(strings.Join(sections, "   ")),
	)
}

func ownerSuffix(owner string) string {
	if owner == "" {
		return ""
	}
	return " · " + owner
}

func (m *Model) viewStock() string {
	s := m.set.StoreStock
	if s.Missing {
		return missing("store")
	}
	if f := s.Form; f != nil {
		body := titleStyle.Render("Adjust stock") + "\n" + mutedStyle.Render(f.Name) + "\n\n" + m.renderForm(m.qtyForm(f))
		if f.Saving {
			body += "\n" + m.spinner.View() + " Saving…"
		}
		return modalStyle.Render(body)
	}
	head := m.searchLine(s.Search) + "   " + mutedStyle.Render("Sort: "+s.Sort.Current().Name)
	items := s.Visible()
	if st := m.state(s.Items.Loading, s.Items.Err, len(items), "No products in this store"); st != "" {
		return head + "\n\n" + st
	}
	lines := []string{head, ""}
	for i, it := range items {
		lines = append(lines, row(i == clamp(m.cursor, len(items)),
			cell(it.Name, 28), cell(it.SKU, 12), cell(format.Price(it.Price), 12), cell(format.Count(it.Qty), 8),
			statusStyle(it.Status).Render(it.Status)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewStaff() string {
	s := m.set.StoreStaff
	if s.Missing {
		return missing("store")
	}
	if f := s.Form; f != nil {
		title := "Add staff member"
		if f.Editing() {
			title = "Edit staff member"
		}
		body := titleStyle.Render(title) + "\n\n" + m.renderForm(m.staffForm(f))
		if f.Saving {
			body += "\n" + m.spinner.View() + " Saving…"
		}
		return modalStyle.Render(body)
	}
	items := s.Staff.Data
	if st := m.state(s.Staff.Loading, s.Staff.Err, len(items), "No staff members yet. Press n to add one."); st != "" {
		return st
	}
	on, brk, off := s.Counts()
	lines := []string{
		mutedStyle.Render(fmt.Sprintf("%d on shift · %d on break · %d clocked out", on, brk, off)),
		"",
	}
	for i, sm := range items {
		name := sm.Name
		if !sm.Active {
			name += " (inactive)"
		}
		lines = append(lines, row(i == clamp(m.cursor, len(items)),
			cell(name, 24), cell(sm.Role, 18), cell(sm.Email, 28), statusStyle(sm.Status).Render(sm.Status)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewSettings() string {
	s := m.set.StoreSettings
	if s.Missing {
		return missing("store")
	}
	f := s.Form
	if f == nil {
		return m.state(s.Store.Loading, s.Store.Err, 0, "Store not found")
	}
	body := m.renderForm(m.settingsForm(f))
	if f.Saving {
		body += "\n" + m.spinner.View() + " Saving…"
	}
	return body
}

func (m *Model) viewProfile() string {
	s := m.set.Profile
	u := s.User.Data
	if st := m.state(s.User.Loading, s.User.Err, boolCount(u != nil), "Profile unavailable"); st != "" {
		return st
	}
	head := titleStyle.Render(u.Name) + "\n" + mutedStyle.Render(u.Email)
	if u.AvatarURL != "" {
		head += "\n" + mutedStyle.Render("Avatar: "+u.AvatarURL)
	}
	body := head + "\n\n" + m.renderForm(m.profileForm())
	switch {
	case s.Info.Saving, s.Password.Saving:
		body += "\n" + m.spinner.View() + " Saving…"
	case s.Avatar.Uploading:
		body += "\n" + m.spinner.View() + " Uploading…"
	}
	return body
}

func orNone(lines []string) string {
	if len(lines) == 0 {
		return mutedStyle.Render("Nothing to show")
	}
	return strings.Join(lines, "\n")
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}
