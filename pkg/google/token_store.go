package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// TokenStore keeps the OAuth2 token of the installed-app flow in a JSON
// file, readable only by the owner.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load returns nil without an error when no token has been stored yet.
func (s *TokenStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read token file %s: %w", s.path, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("unable to decode token file %s: %w", s.path, err)
	}
	return &token, nil
}

func (s *TokenStore) Save(token *oauth2.Token) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("unable to create token directory: %w", err)
		}
	}
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("unable to encode token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("unable to write token file %s: %w", s.path, err)
	}
	log.Debugf("Saved Google token to %s", s.path)
	return nil
}

// persistingTokenSource writes every newly issued access token back to the
// store so that refreshed tokens survive the run.
type persistingTokenSource struct {
	mu              sync.Mutex
	base            oauth2.TokenSource
	store           *TokenStore
	lastAccessToken string
}

func newPersistingTokenSource(base oauth2.TokenSource, store *TokenStore, current *oauth2.Token) *persistingTokenSource {
	ts := &persistingTokenSource{base: base, store: store}
	if current != nil {
		ts.lastAccessToken = current.AccessToken
	}
	return ts
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if token.AccessToken != s.lastAccessToken {
		s.lastAccessToken = token.AccessToken
		if err := s.store.Save(token); err != nil {
			log.Warnf("Unable to persist refreshed Google token: %v", err)
		}
	}
	return token, nil
}
