/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// hashPrefixLen is how many hex characters of a token hash are shown
// in listings and accepted as a removal identifier.
const hashPrefixLen = 12

// Token is one bearer credential accepted by the HTTP transport. The
// plaintext is shown once at creation; only its SHA-256 hash persists.
type Token struct {
	Hash       string     `yaml:"hash"`
	ExpiresAt  *time.Time `yaml:"expires_at"` // nil means no expiry
	Annotation string     `yaml:"annotation"`
	CreatedAt  time.Time  `yaml:"created_at"`
}

// TokenStore holds the set of accepted bearer tokens, keyed by a
// caller-chosen identifier.
type TokenStore struct {
	mu      sync.RWMutex
	Tokens  map[string]*Token `yaml:"tokens"`
	path    string
	watcher *FileWatcher
}

// GenerateToken returns a fresh 256-bit random token, URL-safe base64
// encoded so it pastes cleanly into an Authorization header.
func GenerateToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// decodeTokens parses a token-store YAML document, normalizing a
// missing tokens map to an empty one.
func decodeTokens(data []byte) (map[string]*Token, error) {
	var doc struct {
		Tokens map[string]*Token `yaml:"tokens"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	if doc.Tokens == nil {
		doc.Tokens = make(map[string]*Token)
	}
	return doc.Tokens, nil
}

// LoadTokenStore reads a token store from a YAML file. The path is
// remembered so the store can reload itself when the file changes.
func LoadTokenStore(path string) (*TokenStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tokens, err := decodeTokens(data)
	if err != nil {
		return nil, err
	}

	return &TokenStore{Tokens: tokens, path: path}, nil
}

// Reload replaces the in-memory token set with the current file
// contents. Called by the file watcher; safe against concurrent
// validation.
func (s *TokenStore) Reload() error {
	if s.path == "" {
		return fmt.Errorf("no path set for token store")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read token file: %w", err)
	}

	tokens, err := decodeTokens(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Tokens = tokens
	s.mu.Unlock()

	return nil
}

// SaveTokenStore writes the store to path as YAML, creating parent
// directories as needed. The file is owner-only: it holds credential
// hashes.
func SaveTokenStore(path string, store *TokenStore) error {
	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// AddToken records a new token under tokenID. The caller supplies the
// hash; the plaintext never enters the store.
func (s *TokenStore) AddToken(tokenID, hash, annotation string, expiresAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Tokens == nil {
		s.Tokens = make(map[string]*Token)
	}

	if _, exists := s.Tokens[tokenID]; exists {
		return fmt.Errorf("token with ID '%s' already exists", tokenID)
	}

	s.Tokens[tokenID] = &Token{
		Hash:       hash,
		ExpiresAt:  expiresAt,
		Annotation: annotation,
		CreatedAt:  time.Now(),
	}

	return nil
}

// RemoveToken deletes the token matching identifier, which may be the
// token ID or a hash prefix of at least 8 characters. Returns whether
// anything was removed.
func (s *TokenStore) RemoveToken(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok, exists := s.Tokens[identifier]; exists && tok != nil {
		delete(s.Tokens, identifier)
		return true, nil
	}

	if len(identifier) < 8 {
		return false, nil
	}
	for id, tok := range s.Tokens {
		if strings.HasPrefix(tok.Hash, identifier) {
			delete(s.Tokens, id)
			return true, nil
		}
	}

	return false, nil
}

// ValidateToken reports whether the plaintext token matches a stored,
// unexpired entry.
func (s *TokenStore) ValidateToken(token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hash := HashToken(token)
	now := time.Now()

	for _, tok := range s.Tokens {
		if tok.Hash != hash {
			continue
		}
		if tok.ExpiresAt != nil && tok.ExpiresAt.Before(now) {
			return false, fmt.Errorf("token has expired")
		}
		return true, nil
	}

	return false, nil
}

// TokenInfo is the listing view of a token: identifying metadata
// without the full hash.
type TokenInfo struct {
	ID         string
	HashPrefix string
	ExpiresAt  *time.Time
	Annotation string
	CreatedAt  time.Time
	Expired    bool
}

// ListTokens returns metadata for every stored token.
func (s *TokenStore) ListTokens() []*TokenInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]*TokenInfo, 0, len(s.Tokens))
	now := time.Now()

	for id, tok := range s.Tokens {
		infos = append(infos, &TokenInfo{
			ID:         id,
			HashPrefix: tok.Hash[:hashPrefixLen],
			ExpiresAt:  tok.ExpiresAt,
			Annotation: tok.Annotation,
			CreatedAt:  tok.CreatedAt,
			Expired:    tok.ExpiresAt != nil && tok.ExpiresAt.Before(now),
		})
	}

	return infos
}

// GetDefaultTokenPath resolves the token file location: the system
// config directory if a file exists there, otherwise alongside the
// binary.
func GetDefaultTokenPath(binaryPath string) string {
	systemPath := "/etc/linear-mcp/linear-mcp-tokens.yaml"
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath
	}
	return filepath.Join(filepath.Dir(binaryPath), "linear-mcp-tokens.yaml")
}

// InitializeTokenStore returns an empty store not yet bound to a file.
func InitializeTokenStore() *TokenStore {
	return &TokenStore{Tokens: make(map[string]*Token)}
}

// CleanupExpiredTokens drops every expired token and returns how many
// were removed.
func (s *TokenStore) CleanupExpiredTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := time.Now()

	for id, tok := range s.Tokens {
		if tok.ExpiresAt != nil && tok.ExpiresAt.Before(now) {
			delete(s.Tokens, id)
			removed++
		}
	}

	return removed
}

// StartWatching begins reloading the store whenever its backing file
// changes on disk.
func (s *TokenStore) StartWatching() error {
	if s.path == "" {
		return fmt.Errorf("no path set for token store")
	}

	watcher, err := NewFileWatcher(s.path, s.Reload)
	if err != nil {
		return err
	}

	s.watcher = watcher
	s.watcher.Start()
	return nil
}

// StopWatching stops the file watcher if one is running.
func (s *TokenStore) StopWatching() {
	if s.watcher != nil {
		s.watcher.Stop()
		s.watcher = nil
	}
}
