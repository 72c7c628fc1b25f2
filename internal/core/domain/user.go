package domain

// AuthProvider identifies how a user account was established.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a registered user. The username is the natural key: it is
// case-sensitive, unique, and referenced directly by memberships and journals.
type User struct {
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	AuthProvider AuthProvider `json:"authProvider"`
	AuditFields
}

// GoogleUserInfo mirrors the userinfo payload returned by Google during an
// OAuth login.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
