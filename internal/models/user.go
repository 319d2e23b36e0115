package models

// User mirrors the users table.
type User struct {
	UserID       string
	Username     string
	Name         string
	PasswordHash string
	IsActive     bool
	AuditFields
}
