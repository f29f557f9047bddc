package models

// Credentials is the payload for the token exchange endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by a successful token exchange.
type TokenResponse struct {
	Access string `json:"access"`
}

// Session is a point-in-time snapshot of the authenticated session. Profile
// is set only when the token has been verified and the profile fetched.
// Loading is true only while the initial restore is still running.
type Session struct {
	Token   string
	Profile *User
	Loading bool
}

// Authenticated reports whether a verified profile is attached.
func (s Session) Authenticated() bool {
	return s.Profile != nil
}

// IsAdmin reports whether the session belongs to a treasurer account.
func (s Session) IsAdmin() bool {
	return s.Profile != nil && s.Profile.Role == RoleAdmin
}
