// Package auth is the capability gate guarding mutation entry points: a
// shared passcode plus a display name grant an editor session. There is no
// lockout and no attempt counter; a mismatch yields the same generic error
// every time.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tripdeck/internal/store"
)

// DefaultPasscode is the shared editor passcode unless TRIPDECK_PASSCODE is
// set.
const DefaultPasscode = "1717"

// PasscodeEnv overrides the shared passcode.
const PasscodeEnv = "TRIPDECK_PASSCODE"

var (
	// ErrBadPasscode is deliberately generic: no detail about why the login
	// failed.
	ErrBadPasscode  = errors.New("incorrect passcode")
	ErrNameRequired = errors.New("please enter your name")
)

// Session is an active editor grant. The display name stamps lastEditedBy on
// every item save.
type Session struct {
	Name string
}

// Gate checks the shared passcode and persists the session name through the
// schedule store's user key.
type Gate struct {
	hash  []byte
	store *store.Store
}

// NewGate hashes the configured passcode and restores any persisted session.
func NewGate(st *store.Store) (*Gate, error) {
	passcode := os.Getenv(PasscodeEnv)
	if passcode == "" {
		passcode = DefaultPasscode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare passcode: %w", err)
	}
	return &Gate{hash: hash, store: st}, nil
}

// Login grants a session when the passcode matches and a non-empty name is
// given. The name is persisted so the session survives restarts.
func (g *Gate) Login(name, passcode string) (*Session, error) {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(passcode)); err != nil {
		return nil, ErrBadPasscode
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := g.store.SetCurrentUser(name); err != nil {
		return nil, err
	}
	return &Session{Name: name}, nil
}

// Logout clears the persisted session.
func (g *Gate) Logout() error {
	return g.store.SetCurrentUser("")
}

// Current returns the active session, or nil when logged out.
func (g *Gate) Current() *Session {
	name := g.store.CurrentUser()
	if name == "" {
		return nil
	}
	return &Session{Name: name}
}
