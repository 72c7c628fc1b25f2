package models

// User is the persistence model for the users table.
type User struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	AuthProvider string `db:"auth_provider"`
	AuditFields
}
