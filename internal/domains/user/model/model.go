package model

import "pawsit/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldRole     = "role"
	FieldActive   = "active"
)

// User is a marketplace profile. Identity (credentials, OAuth) lives with the
// external auth provider; this row only carries what the backend needs.
type User struct {
	ID       string  `db:"id"`
	Email    string  `db:"email"`
	FullName *string `db:"full_name"`
	Role     string  `db:"role"`
	Active   bool    `db:"active"`
	model.Metadata
}

// DisplayName resolves a human-readable name: profile name first, then the
// local part of the email, then a generic fallback.
func (u *User) DisplayName(fallback string) string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}

	if u.Email != "" {
		for i := range len(u.Email) {
			if u.Email[i] == '@' {
				if i > 0 {
					return u.Email[:i]
				}

				break
			}
		}
	}

	return fallback
}
