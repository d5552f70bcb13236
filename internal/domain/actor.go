package domain

// Actor is the authenticated principal an operation runs on behalf of,
// as supplied by the identity middleware.
type Actor struct {
	ID    string
	Role  Role
	Email string
	Name  string
}
