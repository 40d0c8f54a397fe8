package domain

// Roles carried by the identity payload.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Identity is the current-user record returned by the is-auth endpoint.
type Identity struct {
	ID       string   `json:"_id,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	CartData CartData `json:"cartData,omitempty"`
}

// Privileged reports whether the role grants access to the back-office.
// Staff and admin both do; the flag is derived from the identity payload,
// never fetched separately.
func (i Identity) Privileged() bool {
	return i.Role == RoleStaff || i.Role == RoleAdmin
}
