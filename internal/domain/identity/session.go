package identity

// Session is the authenticated identity for the current process.
// At most one session is active at a time. It never carries the secret.
type Session struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	Admin       bool   `json:"isAdmin"`
}

// Credential is a static reference record used only to validate login
// attempts. The secret is stripped before a credential becomes a session.
type Credential struct {
	ID          string
	Email       string
	Secret      string
	DisplayName string
	Admin       bool
}

// Matches reports whether the given email and secret both match this
// record exactly, including case.
func (c Credential) Matches(email, secret string) bool {
	return c.Email == email && c.Secret == secret
}

// HasEmail reports whether this record is registered under exactly the
// given email
func (c Credential) HasEmail(email string) bool {
	return c.Email == email
}

// Session builds the session for this credential with the secret stripped
func (c Credential) Session() Session {
	return Session{
		ID:          c.ID,
		Email:       c.Email,
		DisplayName: c.DisplayName,
		Admin:       c.Admin,
	}
}
