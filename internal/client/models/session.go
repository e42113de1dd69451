package models

// Session is the authenticated identity currently held by the client.
//
// Invariant: Token and User are both set or both empty. A partially
// populated session never exists; the durable store writes and clears
// both fields together.
type Session struct {
	Token string
	User  *User
}

// Anonymous returns the unauthenticated session.
func Anonymous() *Session {
	return &Session{}
}

// Authenticated reports whether the session carries a token and identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}
