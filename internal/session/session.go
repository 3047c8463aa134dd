// Package session holds the one process-wide credential: a bearer token
// persisted to disk plus the identity decoded from it. The only legal
// transitions are anonymous -> authenticated on SignIn and authenticated ->
// anonymous on SignOut, which is also triggered whenever the server signals
// the credential is no longer valid.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

var (
	// ErrNotSignedIn gates commands that need an authenticated session.
	ErrNotSignedIn = errors.New("not signed in, run 'nextlevel login' first")
	// ErrNotAdmin gates the management commands.
	ErrNotAdmin = errors.New("this command requires an administrator account")
)

// Identity is the user object decoded from the bearer token.
type Identity struct {
	ID      int
	Name    string
	Profile string
}

// Admin reports whether the identity carries the elevated role.
func (id Identity) Admin() bool {
	return id.Profile == models.ProfileAdmin
}

type claims struct {
	ID      int    `json:"id"`
	Name    string `json:"nome"`
	Profile string `json:"perfil"`
	jwt.RegisteredClaims
}

// Store is the session holder backed by a token file. The zero state is
// anonymous; loading an existing token file resumes the authenticated state.
type Store struct {
	path     string
	token    string
	identity *Identity
}

// NewStore opens the session at path, resuming a previous sign-in when the
// token file exists and still decodes.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	identity, err := Decode(string(raw))
	if err != nil {
		// A corrupt token file degrades to anonymous rather than failing.
		_ = os.Remove(path)
		return s, nil
	}

	s.token = string(raw)
	s.identity = identity
	return s, nil
}

// Decode extracts the identity from a token. Signature verification is the
// server's job; the client never holds the signing secret, so the payload is
// parsed unverified, exactly as trustworthy as the server that issued it.
func Decode(token string) (*Identity, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return &Identity{ID: c.ID, Name: c.Name, Profile: c.Profile}, nil
}

// SignIn stores the token and moves the session to authenticated.
func (s *Store) SignIn(token string) (*Identity, error) {
	identity, err := Decode(token)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	s.token = token
	s.identity = identity
	return identity, nil
}

// SignOut clears the credential and returns the session to anonymous. It is
// safe to call when already anonymous.
func (s *Store) SignOut() error {
	s.token = ""
	s.identity = nil

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// Token returns the stored credential, empty when anonymous. Store satisfies
// the API client's token source with this method.
func (s *Store) Token() string { return s.token }

// Current returns the signed-in identity, nil when anonymous.
func (s *Store) Current() *Identity { return s.identity }

// RequireUser enforces the {authenticated} requirement.
func (s *Store) RequireUser() (*Identity, error) {
	if s.identity == nil {
		return nil, ErrNotSignedIn
	}
	return s.identity, nil
}

// RequireAdmin enforces the {authenticated AND elevated-role} requirement.
func (s *Store) RequireAdmin() (*Identity, error) {
	identity, err := s.RequireUser()
	if err != nil {
		return nil, err
	}
	if !identity.Admin() {
		return nil, ErrNotAdmin
	}
	return identity, nil
}
