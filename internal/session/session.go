// Package session holds the admin's bearer token. The token lives in a
// single file under the config dir; its absence is the sole signal of
// "logged out". The Manager is the one authoritative holder of the session:
// network code asks it for the token at call time and reports invalidation
// back through it, and interested parties subscribe to the invalidation
// signal instead of reading storage ad hoc.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pamsartech/jytechinvestment-admin/internal/config"
)

// ErrNoSession is returned when no token is stored.
var ErrNoSession = errors.New("no session")

const fileName = "session.json"

type stored struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

// Manager reads, writes, and invalidates the persisted session token.
type Manager struct {
	dir string

	mu sync.Mutex
	// invalidated guards the session-expired signal: however many in-flight
	// requests observe a 401/403, subscribers hear about it exactly once
	// until a fresh token is stored.
	invalidated bool
	subscribers []func()
}

// NewManager uses the standard config dir.
func NewManager() (*Manager, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(dir), nil
}

// NewManagerAt pins the manager to an explicit directory (tests).
func NewManagerAt(dir string) *Manager {
	return &Manager{dir: dir}
}

func (m *Manager) path() string {
	return filepath.Join(m.dir, fileName)
}

// Token reads the token from persistent storage at call time; it is
// deliberately not cached so that a logout in another process is observed
// by the next request. JYADMIN_TOKEN overrides storage for scripting.
func (m *Manager) Token() (string, error) {
	if v := strings.TrimSpace(os.Getenv("JYADMIN_TOKEN")); v != "" {
		return v, nil
	}
	b, err := os.ReadFile(m.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoSession
		}
		return "", err
	}
	var s stored
	if err := json.Unmarshal(b, &s); err != nil {
		return "", ErrNoSession
	}
	tok := strings.TrimSpace(s.Token)
	if tok == "" {
		return "", ErrNoSession
	}
	return tok, nil
}

// SetToken persists a fresh token and re-arms the invalidation signal.
func (m *Manager) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(stored{Token: token, CreatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path(), append(b, '\n'), 0o600); err != nil {
		return err
	}

	m.mu.Lock()
	m.invalidated = false
	m.mu.Unlock()
	return nil
}

// Clear deletes the stored token (logout). It does not fire the
// invalidation signal; that is reserved for server-side expiry.
func (m *Manager) Clear() error {
	err := os.Remove(m.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// OnInvalidate registers a callback fired when the server rejects the
// session. Callbacks run on the invalidating goroutine.
func (m *Manager) OnInvalidate(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

// Invalidate clears the stored token and notifies subscribers. Concurrent
// calls collapse into a single notification: the first caller wins, later
// ones are no-ops until SetToken re-arms the signal.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	if m.invalidated {
		m.mu.Unlock()
		return
	}
	m.invalidated = true
	subs := make([]func(), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	_ = m.Clear()
	for _, fn := range subs {
		fn()
	}
}
