package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// entryFileExtension is the file extension used for cache entries.
const entryFileExtension = ".json"

// Common cache errors.
var (
	ErrNotFound   = errors.New("cache entry not found")
	ErrExpired    = errors.New("cache entry expired")
	ErrInvalidKey = errors.New("cache key cannot be empty")
	ErrDisabled   = errors.New("cache is disabled")
)

// Entry is a single cached value with TTL metadata.
type Entry struct {
	// Key identifies the entry (source fingerprint plus page index).
	Key string `json:"key"`

	// Data is the cached value, JSON-serialized.
	Data json.RawMessage `json:"data"`

	// CreatedAt is when the entry was written.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the entry expires.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the entry's TTL has elapsed.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// FileStore persists cache entries as JSON files in a directory.
// Thread-safe for concurrent access.
type FileStore struct {
	directory string
	enabled   bool
	ttl       time.Duration

	mu sync.RWMutex
}

// NewFileStore creates a file-based cache store, creating the directory
// if needed. A disabled store is valid: every operation returns
// ErrDisabled and callers fall through to the backing source.
func NewFileStore(directory string, enabled bool, ttl time.Duration) (*FileStore, error) {
	if !enabled {
		return &FileStore{enabled: false}, nil
	}

	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}

	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStore{
		directory: directory,
		enabled:   true,
		ttl:       ttl,
	}, nil
}

// Enabled reports whether the store accepts reads and writes.
func (s *FileStore) Enabled() bool {
	return s.enabled
}

// Get retrieves an entry by key. Returns ErrNotFound when the entry
// does not exist and ErrExpired (after deleting the file) when its TTL
// has elapsed.
func (s *FileStore) Get(key string) (*Entry, error) {
	if !s.enabled {
		return nil, ErrDisabled
	}
	if key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.RLock()
	data, err := os.ReadFile(s.keyToFilePath(key))
	s.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry Entry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}

	if entry.IsExpired() {
		s.mu.Lock()
		_ = os.Remove(s.keyToFilePath(key))
		s.mu.Unlock()
		return nil, ErrExpired
	}

	return &entry, nil
}

// Set writes an entry under key with the store's TTL.
func (s *FileStore) Set(key string, data json.RawMessage) error {
	if !s.enabled {
		return ErrDisabled
	}
	if key == "" {
		return ErrInvalidKey
	}

	now := time.Now()
	entry := Entry{
		Key:       key,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	encoded, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.keyToFilePath(key), encoded, 0600); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Clear removes all cache entries from the store directory.
func (s *FileStore) Clear() error {
	if !s.enabled {
		return ErrDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(s.directory, "*"+entryFileExtension))
	if err != nil {
		return fmt.Errorf("failed to list cache files: %w", err)
	}
	for _, path := range matches {
		if removeErr := os.Remove(path); removeErr != nil {
			return fmt.Errorf("failed to remove cache file: %w", removeErr)
		}
	}
	return nil
}

// keyToFilePath maps a cache key to its file path, sanitizing path
// separators so keys cannot escape the cache directory.
func (s *FileStore) keyToFilePath(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.directory, safe+entryFileExtension)
}
