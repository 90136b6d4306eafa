package domain

// Session holds the in-memory security session state: the currently derived
// enhanced key and the authentication flag. It is constructed once per process
// and injected into the coordinator; it is never persisted, so authentication
// cannot survive a process restart.
//
// The session carries no internal locking. Callers are expected to issue
// coordinator operations sequentially; concurrent mutation is not supported.
type Session struct {
	key           string
	authenticated bool
}

// NewSession creates an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Key returns the current enhanced key, or the empty string when none is derived.
func (s *Session) Key() string {
	return s.key
}

// HasKey reports whether an enhanced key has been derived in this session.
func (s *Session) HasKey() bool {
	return s.key != ""
}

// Authenticated reports whether the session passed authentication.
// Data access requires both Authenticated and HasKey; the flag alone is not
// sufficient if no key was derived.
func (s *Session) Authenticated() bool {
	return s.authenticated
}

// SetKey installs a freshly derived enhanced key.
func (s *Session) SetKey(key string) {
	s.key = key
}

// MarkAuthenticated records a successful authentication.
func (s *Session) MarkAuthenticated() {
	s.authenticated = true
}

// Reset clears the key and the authentication flag.
func (s *Session) Reset() {
	s.key = ""
	s.authenticated = false
}

// CanAccessData reports whether secure data operations are permitted.
func (s *Session) CanAccessData() bool {
	return s.authenticated && s.key != ""
}
