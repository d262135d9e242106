package speech

import (
	"errors"
	"sync"
)

var (
	// ErrSessionInactive is returned when audio is requested from a session
	// that has not been activated.
	ErrSessionInactive = errors.New("audio session is not active")
	// ErrSessionActive is returned by Activate on an already active session.
	ErrSessionActive = errors.New("audio session is already active")
)

// Hooks run on session transitions. Either may be nil.
type Hooks struct {
	OnActivate   func() error
	OnDeactivate func() error
}

// Session tracks the lifetime of an audio output. It is created explicitly
// and handed to the code that plays audio; it is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	active bool
	hooks  Hooks
}

// NewSession returns an inactive session.
func NewSession(hooks Hooks) *Session {
	return &Session{hooks: hooks}
}

// Activate starts the session.
func (s *Session) Activate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return ErrSessionActive
	}
	if s.hooks.OnActivate != nil {
		if err := s.hooks.OnActivate(); err != nil {
			return err
		}
	}
	s.active = true
	return nil
}

// Deactivate ends the session. Deactivating an inactive session is a no-op.
func (s *Session) Deactivate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}
	s.active = false
	if s.hooks.OnDeactivate != nil {
		return s.hooks.OnDeactivate()
	}
	return nil
}

// Active reports whether the session is active.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
