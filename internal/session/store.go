// Package session holds the authenticated identity for the running app:
// the API token plus the owner profile, persisted across restarts as two
// entries (`token`, `owner`) under the state directory.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/turgho/aluguei-cli/pkg/domain"
)

const (
	tokenFile = "token"
	ownerFile = "owner"
)

// Store is the auth session holder. Token and owner are always set or
// cleared together: the store is either anonymous or authenticated, never
// half of each.
type Store struct {
	dir   string
	token string
	owner *domain.Owner
}

// NewStore creates a session store rooted at dir. Nothing is read until
// Restore is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the state directory: $ALUGUEI_STATE_DIR when set,
// otherwise ~/.aluguei.
func DefaultDir() (string, error) {
	if dir := os.Getenv("ALUGUEI_STATE_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".aluguei"), nil
}

// Restore loads a previously persisted session. It runs once at process
// start, before any screen renders. If either entry is missing or
// malformed the store fails closed and stays anonymous; storage errors are
// treated as "no session", never surfaced to the user.
func (s *Store) Restore() {
	tok, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return
	}
	token := strings.TrimSpace(string(tok))
	if token == "" {
		return
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, ownerFile))
	if err != nil {
		return
	}
	var owner domain.Owner
	if err := json.Unmarshal(raw, &owner); err != nil || owner.ID == uuid.Nil {
		return
	}

	s.token = token
	s.owner = &owner
}

// Login persists both entries durably, then swaps the in-memory session
// atomically. A persistence failure is reported but does not roll the
// session back: the app proceeds with an in-memory-only session that will
// not survive a restart.
func (s *Store) Login(token string, owner *domain.Owner) error {
	var persistErr error
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		persistErr = fmt.Errorf("create state dir: %w", err)
	} else if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0600); err != nil {
		persistErr = fmt.Errorf("save token: %w", err)
	} else {
		raw, err := json.Marshal(owner)
		if err != nil {
			persistErr = fmt.Errorf("encode owner: %w", err)
		} else if err := os.WriteFile(filepath.Join(s.dir, ownerFile), raw, 0600); err != nil {
			persistErr = fmt.Errorf("save owner: %w", err)
		}
	}

	s.token = token
	s.owner = owner
	return persistErr
}

// Logout clears durable storage first and the in-memory session after,
// regardless of whether the removal succeeded: logout never leaves the
// user stuck authenticated.
func (s *Store) Logout() {
	os.Remove(filepath.Join(s.dir, tokenFile)) //nolint:errcheck // best-effort clear
	os.Remove(filepath.Join(s.dir, ownerFile)) //nolint:errcheck // best-effort clear
	s.token = ""
	s.owner = nil
}

// Token returns the current session token, or "" when anonymous.
// The API client reads the token through this method on every request.
func (s *Store) Token() string {
	return s.token
}

// Owner returns the authenticated owner profile, or nil when anonymous.
func (s *Store) Owner() *domain.Owner {
	return s.owner
}

// Authenticated reports whether a session is active. Screens that require
// auth call this on every focus, not only once.
func (s *Store) Authenticated() bool {
	return s.token != "" && s.owner != nil
}
