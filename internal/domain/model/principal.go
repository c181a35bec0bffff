package model

const AuthorityUser = "ROLE_USER"

// Principal is the resolved identity of the caller for a single request.
// It is derived from a validated token plus the stored user record and is
// never persisted.
type Principal struct {
	ID          int64
	Username    string
	Email       string
	Authorities []string
}

// NewPrincipal builds a Principal from a user record.
func NewPrincipal(u *User) *Principal {
	return &Principal{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Authorities: []string{AuthorityUser},
	}
}
