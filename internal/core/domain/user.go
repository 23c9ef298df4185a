package domain

// User represents an API user account.
type User struct {
	UserID       int64
	Name         string // unique
	Email        string // unique
	PasswordHash string // bcrypt hash; never serialized back to callers
}

// UserPatch describes a partial user update. Nil fields are left untouched.
// Password carries plaintext and is hashed by the service before persisting.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// IsEmpty reports whether the patch carries no recognized fields.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}
