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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// User represents an account allowed to reach the HTTP transport with
// Basic credentials instead of a bearer token.
type User struct {
	Username     string    `yaml:"username"`      // Unique username
	PasswordHash string    `yaml:"password_hash"` // Bcrypt hash of password
	CreatedAt    time.Time `yaml:"created_at"`    // When the user was created
	Enabled      bool      `yaml:"enabled"`       // Whether the user is enabled
	Annotation   string    `yaml:"annotation"`    // User note/description
}

// UserStore manages user accounts
type UserStore struct {
	mu      sync.RWMutex
	Users   map[string]*User `yaml:"users"` // key is username
	path    string           // File path for auto-reloading
	watcher *FileWatcher     // File watcher for auto-reloading
}

// HashPassword creates a bcrypt hash of the password
// Uses bcrypt cost of 12 for strong security
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks if the provided password matches the hash
func VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// LoadUserStore loads users from a YAML file
func LoadUserStore(path string) (*UserStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var store UserStore
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse user file: %w", err)
	}

	if store.Users == nil {
		store.Users = make(map[string]*User)
	}

	store.path = path

	return &store, nil
}

// Reload reloads the user store from disk
func (s *UserStore) Reload() error {
	if s.path == "" {
		return fmt.Errorf("no path set for user store")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read user file: %w", err)
	}

	var newStore UserStore
	if err := yaml.Unmarshal(data, &newStore); err != nil {
		return fmt.Errorf("failed to parse user file: %w", err)
	}

	if newStore.Users == nil {
		newStore.Users = make(map[string]*User)
	}

	s.mu.Lock()
	s.Users = newStore.Users
	s.mu.Unlock()

	return nil
}

// SaveUserStore saves users to a YAML file
func SaveUserStore(path string, store *UserStore) error {
	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write with restrictive permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write user file: %w", err)
	}

	return nil
}

// AddUser adds a new user to the store
func (s *UserStore) AddUser(username, password, annotation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Users == nil {
		s.Users = make(map[string]*User)
	}

	if _, exists := s.Users[username]; exists {
		return fmt.Errorf("user '%s' already exists", username)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	s.Users[username] = &User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		Enabled:      true,
		Annotation:   annotation,
	}

	return nil
}

// UpdateUser changes a user's password and/or annotation. Empty values
// leave the existing field untouched.
func (s *UserStore) UpdateUser(username, password, annotation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.Users[username]
	if !exists {
		return fmt.Errorf("user '%s' not found", username)
	}

	if password != "" {
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	if annotation != "" {
		user.Annotation = annotation
	}

	return nil
}

// RemoveUser removes a user from the store
func (s *UserStore) RemoveUser(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Users[username]; !exists {
		return fmt.Errorf("user '%s' not found", username)
	}

	delete(s.Users, username)
	return nil
}

// SetEnabled enables or disables a user account
func (s *UserStore) SetEnabled(username string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.Users[username]
	if !exists {
		return fmt.Errorf("user '%s' not found", username)
	}

	user.Enabled = enabled
	return nil
}

// Authenticate verifies a username/password pair against the store.
// Disabled accounts never authenticate.
func (s *UserStore) Authenticate(username, password string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.Users[username]
	if !exists {
		return fmt.Errorf("invalid username or password")
	}

	if !user.Enabled {
		return fmt.Errorf("user account is disabled")
	}

	if err := VerifyPassword(password, user.PasswordHash); err != nil {
		return fmt.Errorf("invalid username or password")
	}

	return nil
}

// ListUsers returns all users sorted by username
func (s *UserStore) ListUsers() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*User, 0, len(s.Users))
	for _, user := range s.Users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Username < result[j].Username
	})

	return result
}

// GetDefaultUserPath returns the default user file path
// Searches /etc/linear-mcp/ first, then binary directory
func GetDefaultUserPath(binaryPath string) string {
	systemPath := "/etc/linear-mcp/linear-mcp-users.yaml"
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath
	}

	dir := filepath.Dir(binaryPath)
	return filepath.Join(dir, "linear-mcp-users.yaml")
}

// InitializeUserStore creates a new empty user store
func InitializeUserStore() *UserStore {
	return &UserStore{
		Users: make(map[string]*User),
	}
}

// StartWatching starts watching the user file for changes
func (s *UserStore) StartWatching() error {
	if s.path == "" {
		return fmt.Errorf("no path set for user store")
	}

	watcher, err := NewFileWatcher(s.path, s.Reload)
	if err != nil {
		return err
	}

	s.watcher = watcher
	s.watcher.Start()
	return nil
}

// StopWatching stops watching the user file for changes
func (s *UserStore) StopWatching() {
	if s.watcher != nil {
		s.watcher.Stop()
		s.watcher = nil
	}
}
