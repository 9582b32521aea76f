package dto

// StaffRequest entrada de POST /super-admin/staff y PUT /super-admin/staff/{id}.
type StaffRequest struct {
	StoreID string `json:"store_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Role    string `json:"role" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof='On Shift' 'On Break' 'Clocked Out'"`
	Active  bool   `json:"active"`
}
