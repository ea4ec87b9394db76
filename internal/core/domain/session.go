package domain

// Session holds at most one Identity plus a loading flag. Loading is true only
// until the first hydration attempt completes; exactly one Session exists per
// principal-session being served.
type Session struct {
	Identity *Identity
	Loading  bool
}

// NewSession returns a Session in its pre-hydration state.
func NewSession() *Session {
	return &Session{Loading: true}
}

// Authenticated reports whether an Identity is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.Identity != nil
}
