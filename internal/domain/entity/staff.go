package entity

// Turnos del personal.
const (
	ShiftOnShift    = "On Shift"
	ShiftOnBreak    = "On Break"
	ShiftClockedOut = "Clocked Out"
)

// Roles de personal de tienda.
var StaffRoles = []string{"Store Manager", "Floor Supervisor", "Sales Associate", "Inventory Clerk"}

// StaffMember empleado de una tienda. Se crea, edita y elimina vía backend;
// la lista local siempre se recarga tras cada mutación.
type StaffMember struct {
	ID        string `json:"id" validate:"required"`
	StoreID   string `json:"store_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Active    bool   `json:"active"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
