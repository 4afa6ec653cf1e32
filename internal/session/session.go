package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DemoToken is the constant auth token written on login. There is no
// authentication backend; token presence implies an authenticated session.
const DemoToken = "ww-auth-token"

// sessionFile is the session state file inside the wallet data dir.
const sessionFile = "session.yaml"

// Role is the signed-in user's role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAgent || r == RoleAdmin
}

// Session is the persisted session state.
type Session struct {
	AuthToken   string `yaml:"auth_token,omitempty"`
	Role        Role   `yaml:"role,omitempty"`
	KYCVerified bool   `yaml:"kyc_verified"`
}

// IsAuthenticated reports whether a login token is present.
func (s *Session) IsAuthenticated() bool {
	return s.AuthToken != ""
}

// Store reads and writes the session file in the wallet data dir.
type Store struct {
	dataDir string
}

// NewStore creates a session Store over a data dir.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Load reads the current session. A missing file yields an empty,
// unauthenticated session.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	return &sess, nil
}

// Login writes an authenticated session with the given role. The KYC flag
// survives re-login.
func (s *Store) Login(role Role) (*Session, error) {
	if !ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	sess, err := s.Load()
	if err != nil {
		return nil, err
	}
	sess.AuthToken = DemoToken
	sess.Role = role
	if err := s.save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout clears the auth token and role. The KYC flag is kept; identity
// verification outlives the session.
func (s *Store) Logout() error {
	sess, err := s.Load()
	if err != nil {
		return err
	}
	sess.AuthToken = ""
	sess.Role = ""
	return s.save(sess)
}

// SetKYCVerified marks the wallet owner as identity-verified.
func (s *Store) SetKYCVerified() error {
	sess, err := s.Load()
	if err != nil {
		return err
	}
	sess.KYCVerified = true
	return s.save(sess)
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, sessionFile)
}

func (s *Store) save(sess *Session) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}
