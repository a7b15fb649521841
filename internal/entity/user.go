package entity

// UserLoginData is the identity carried in verified access tokens. Token
// issuance lives with the upstream identity service; this backend only
// verifies and unpacks.
type UserLoginData struct {
	ID       string
	Email    string
	Username string
}
