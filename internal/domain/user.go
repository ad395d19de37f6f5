package domain

// Role defines user permission levels.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated caller, resolved from the bearer token.
type User struct {
	ID    string
	Email string
	Role  Role
}
