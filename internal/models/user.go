package models

// User is the identity resolved from a verified bearer token. The identity
// provider (Casdoor) owns the account record; this is the projection the
// handlers work with.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified bool   `json:"emailVerified"`
}
