package domain

// AuthUser is the identity derived from a verified bearer token for the
// duration of one request. It is never persisted.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
