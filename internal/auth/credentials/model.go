package credentials

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Credential is the identity store's view of a user: who they are,
// how their secret verifies, and what they may do. This subsystem
// never mutates it.
type Credential struct {
	UserID     string
	SecretHash string
	Role       string
}
