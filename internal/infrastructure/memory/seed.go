package memory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// taxRate impuesto aplicado a las órdenes sembradas.
var taxRate = decimal.RequireFromString("0.08")

// Seed carga los datos de demostración (tiendas, catálogo, stock, órdenes, personal y series).
// Las fechas de las órdenes son relativas a now. Los usuarios no se siembran aquí:
// el alta del administrador pasa por el caso de uso de auth para hashear la contraseña.
func Seed(db *DB, now time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.stores = []entity.Store{
		{
			ID: "1", Name: "Downtown Flagship", Location: "New York, NY", Status: entity.StoreStatusOpen,
			OwnerName: "Sarah Jenkins", Logo: "https://picsum.photos/seed/store1/200/200", Rating: 4.8, Growth: 12,
			Permissions: entity.StorePermissions{Inventory: true, Orders: true, Staff: true, Reports: true},
			Settings:    entity.StoreSettings{Currency: "USD", Timezone: "America/New_York", LowStockThreshold: 10},
		},
		{
			ID: "2", Name: "Sunset Mall Branch", Location: "Los Angeles, CA", Status: entity.StoreStatusOpen,
			OwnerName: "Marcus Reed", Logo: "https://picsum.photos/seed/store2/200/200", Rating: 4.5, Growth: 5,
			Permissions: entity.StorePermissions{Inventory: true, Orders: true, Staff: false, Reports: true},
			Settings:    entity.StoreSettings{Currency: "USD", Timezone: "America/Los_Angeles", LowStockThreshold: 10},
		},
		{
			ID: "3", Name: "Lakeside Plaza", Location: "Chicago, IL", Status: entity.StoreStatusMaintenance,
			OwnerName: "Olivia Grant", Logo: "https://picsum.photos/seed/store3/200/200", Rating: 4.2, Growth: -2,
			Permissions: entity.StorePermissions{Inventory: true, Orders: false, Staff: false, Reports: false},
			Settings:    entity.StoreSettings{Currency: "USD", Timezone: "America/Chicago", LowStockThreshold: 5},
		},
	}

	db.products = []entity.Product{
		product("1", "iPhone 15 Pro", "APPL-15P-BLK", "Electronics", "999.00", "iphone", "Titanium smartphone with A17 Pro chip."),
		product("2", "Sony XM5 Headphones", "SNY-XM5-WHT", "Audio", "399.00", "sony", "Wireless noise cancelling headphones."),
		product("3", "Keychron K2 V2", "KEY-K2V2-RGB", "Accessories", "89.00", "keyboard", "Compact wireless mechanical keyboard."),
		product("4", "Apple Watch Ultra", "APPL-WULT-ORG", "Wearables", "799.00", "watch", "Rugged smartwatch for outdoor use."),
		product("5", "Nike Air Max 270", "NK-AM270-BLK", "Footwear", "150.00", "airmax", ""),
		product("6", "Adidas Ultraboost", "AD-UB22-WHT", "Footwear", "180.00", "ultraboost", ""),
		product("7", "Yeezy Boost 350", "YZY-350-BRED", "Footwear", "220.00", "yeezy", ""),
		product("8", "Puma RS-X", "PM-RSX-GRY", "Footwear", "110.00", "pumarsx", ""),
		product("9", "New Balance 550", "NB-550-GRN", "Footwear", "120.00", "nb550", ""),
	}

	db.stock = map[string]map[string]int{
		"1": {"1": 200, "2": 5, "3": 0, "4": 40, "5": 12, "6": 3, "7": 0, "8": 24, "9": 8},
		"2": {"1": 180, "2": 7, "3": 0, "4": 30},
		"3": {"1": 72, "4": 16},
	}

	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	db.orders = []entity.OrderDetail{
		order("9421", "Sarah Jenkins", db.stores[0], entity.OrderCompleted, ago(2*time.Minute), "Visa •••• 4242",
			item(db.products[0], 1), item(db.products[4], 2)),
		order("9420", "Michael Ross", db.stores[1], entity.OrderPending, ago(15*time.Minute), "Mastercard •••• 5100",
			item(db.products[3], 1), item(db.products[1], 1)),
		order("9419", "David Chen", db.stores[2], entity.OrderInTransit, ago(time.Hour), "PayPal",
			item(db.products[2], 1)),
		order("9418", "Emma Watson", db.stores[1], entity.OrderRefunded, ago(2*time.Hour), "Visa •••• 1881",
			item(db.products[8], 1), item(db.products[4], 1)),
		order("8829", "Liam Carter", db.stores[0], entity.OrderCompleted, ago(26*time.Hour), "Apple Pay",
			item(db.products[7], 1), item(db.products[5], 1)),
		order("8790", "Noah Patel", db.stores[0], entity.OrderCompleted, ago(3*24*time.Hour), "Visa •••• 0032",
			item(db.products[0], 2)),
		order("8614", "Ava Thompson", db.stores[1], entity.OrderCompleted, ago(12*24*time.Hour), "Mastercard •••• 7781",
			item(db.products[3], 1), item(db.products[2], 2)),
		order("8120", "Mia Robinson", db.stores[2], entity.OrderCompleted, ago(45*24*time.Hour), "PayPal",
			item(db.products[1], 1)),
	}

	db.staff = []entity.StaffMember{
		staff("s1", "1", "Sarah Jenkins", "Store Manager", entity.ShiftOnShift, true, "sarah"),
		staff("s2", "1", "David Miller", "Floor Supervisor", entity.ShiftOnBreak, true, "david"),
		staff("s3", "1", "Jessica Lee", "Sales Associate", entity.ShiftOnShift, true, "jessica"),
		staff("s4", "1", "Michael Brown", "Sales Associate", entity.ShiftClockedOut, false, "michael"),
		staff("s5", "1", "Emily Davis", "Inventory Clerk", entity.ShiftOnShift, true, "emily"),
		staff("s6", "2", "Marcus Reed", "Store Manager", entity.ShiftOnShift, true, "marcus"),
		staff("s7", "2", "Chloe Martin", "Sales Associate", entity.ShiftClockedOut, true, "chloe"),
	}

	db.trends = map[string][]entity.TrendPoint{
		entity.PeriodToday: series([]string{"9AM", "11AM", "1PM", "3PM", "5PM", "7PM", "9PM"}, 12, 18, 31, 24, 40, 36, 15),
		entity.PeriodWeek:  series([]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}, 109, 21, 41, 93, 33, 101, 61),
		entity.PeriodMonth: series([]string{"W1", "W2", "W3", "W4"}, 420, 385, 510, 467),
		entity.PeriodYear: series([]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"},
			1520, 1380, 1610, 1745, 1690, 1820, 1905, 1870, 1760, 1940, 2210, 2480),
	}
	db.traffic = map[string]int{
		entity.PeriodToday: 320,
		entity.PeriodWeek:  2450,
		entity.PeriodMonth: 10400,
		entity.PeriodYear:  118000,
	}
}

func product(id, name, sku, category, price, img, desc string) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        name,
		SKU:         sku,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		ImageURL:    "https://picsum.photos/seed/" + img + "/200/200",
		Description: desc,
	}
}

func item(p entity.Product, qty int) entity.OrderItem {
	return entity.OrderItem{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Quantity:  qty,
		UnitPrice: p.Price,
		Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func order(id, customer string, store entity.Store, status string, at time.Time, payment string, items ...entity.OrderItem) entity.OrderDetail {
	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal)
		count += it.Quantity
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return entity.OrderDetail{
		Order: entity.Order{
			ID:           id,
			OrderNumber:  "ORD-" + id,
			CustomerName: customer,
			StoreName:    store.Name,
			TotalAmount:  subtotal.Add(tax),
			Status:       status,
			ItemsCount:   count,
			CreatedAt:    at,
		},
		Customer: entity.Customer{
			Name:    customer,
			Email:   emailFor(customer),
			Phone:   "+1 555 0100",
			Address: store.Location,
		},
		Store:         entity.StoreRef{ID: store.ID, Name: store.Name},
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		PaymentMethod: payment,
	}
}

func staff(id, storeID, name, role, status string, active bool, avatar string) entity.StaffMember {
	return entity.StaffMember{
		ID:        id,
		StoreID:   storeID,
		Name:      name,
		Email:     emailFor(name),
		Role:      role,
		Status:    status,
		Active:    active,
		AvatarURL: "https://i.pravatar.cc/150?u=" + avatar,
	}
}

func series(labels []string, values ...int64) []entity.TrendPoint {
	out := make([]entity.TrendPoint, len(labels))
	for i, l := range labels {
		out[i] = entity.TrendPoint{Label: l, Value: decimal.NewFromInt(values[i])}
	}
	return out
}

// emailFor "Sarah Jenkins" -> "sarah.jenkins@sultan.com".
func emailFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@sultan.com"
}
