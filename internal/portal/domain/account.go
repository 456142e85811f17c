package domain

// Role tags an account as portal administrator or contractor company.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleContractor Role = "contractor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleContractor
}

// SuperAdminUsername is the built-in administrator account. It can be
// updated but never deleted.
const SuperAdminUsername = "admin"

// Account is a portal login. Accounts are keyed by username in the users
// document; Username is populated from the key on load and excluded from
// the stored value.
type Account struct {
	Username string `json:"-"`

	// Password is opaque and compared verbatim. The portal stores whatever
	// string the administrator typed.
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	DisplayName string `json:"name"`
}
