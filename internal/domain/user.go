package domain

// Role gates mutation and admin-view operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account that can sign in. There is no password on the record:
// login matches on email only.
type User struct {
	ID       int64  `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Role     Role   `json:"role" yaml:"role"`
}

// IsAdmin reports whether u holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsAnonymous reports whether u is the zero User, which stands for a
// request without a signed-in session.
func (u User) IsAnonymous() bool {
	return u.ID == 0
}
