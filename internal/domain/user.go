package domain

// User roles
const (
	RolePlanner  = "urban_planner"
	RoleResident = "resident"
)

// User - an authenticated account
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Name         string `json:"name" db:"name"`
	Surname      string `json:"surname" db:"surname"`
	Role         string `json:"role" db:"role"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// IsPlanner reports whether the user may modify documents.
func (u User) IsPlanner() bool {
	return u.Role == RolePlanner
}

// Session - a logged-in user snapshot stored under an opaque id
type Session struct {
	ID   string `json:"id"`
	User User   `json:"user"`
}
