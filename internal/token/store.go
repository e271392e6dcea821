// ABOUTME: Persists the bearer token for the Blogify API across runs
// ABOUTME: Stores a single token file in the XDG config directory

package token

import (
	"os"
	"path/filepath"
	"strings"
)

// Store manages the single bearer token kept between sessions.
// An empty or unreadable token file is treated the same as no token:
// callers only ever see "token" or "no token", never a storage error.
type Store struct {
	configDir string
}

// New creates a Store backed by the given config directory.
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "blogctl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "blogctl")
}

// tokenFile returns the path to the token file
func (s *Store) tokenFile() string {
	return filepath.Join(s.configDir, "token")
}

// Get reads the stored token. The second return value reports whether a
// token is present; read failures degrade to absent.
func (s *Store) Get() (string, bool) {
	if s.configDir == "" {
		return "", false
	}
	data, err := os.ReadFile(s.tokenFile())
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(data))
	if tok == "" {
		return "", false
	}
	return tok, true
}

// Set stores the token, replacing any previous one.
func (s *Store) Set(tok string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.tokenFile(), []byte(tok+"\n"), 0600)
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.tokenFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
