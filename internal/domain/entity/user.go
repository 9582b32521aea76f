package entity

// Roles de la consola.
const (
	RoleSuperAdmin = "super_admin"
	RoleStoreAdmin = "store_admin"
)

// User representa el usuario de la sesión (espejo de GET /super-admin/user).
type User struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Email     string `json:"email" validate:"required"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	// PasswordHash solo existe del lado del backend stub; nunca se serializa.
	PasswordHash string `json:"-"`
}

// Session agrupa el token bearer y el usuario autenticado.
type Session struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}
