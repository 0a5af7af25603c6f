package entities

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleViewer UserRole = "viewer"
)

// User is the single local session actor. It is not authenticated against the
// backend; the role gate is a client-side affordance only, the API is guarded
// by its bearer token (when configured) regardless of role.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// CanMutate is the single authorization policy consulted by UI affordances.
func (u User) CanMutate() bool { return u.Role == UserRoleAdmin }
