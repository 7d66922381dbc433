package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/busedmrly/vitrin/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketPreferences = []byte("preferences")
)

// Keys within the preferences bucket
const (
	keyFavorites = "favorites"
	keyViewMode  = "view_mode"
)

// PreferenceStore implements domain.Preferences using BoltDB.
type PreferenceStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

func NewPreferenceStore(dataDir string) (*PreferenceStore, error) {
	if dataDir == "" {
		// Memory-only mode (no persistence)
		return &PreferenceStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "vitrin.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPreferences)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PreferenceStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *PreferenceStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PreferenceStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	// Read from BoltDB
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *PreferenceStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	// Update memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	// Write to BoltDB
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

// === Favorites ===

// FavoriteIDs returns the persisted favorite set, or an empty slice when
// nothing usable is stored.
func (s *PreferenceStore) FavoriteIDs() []int {
	var ids []int
	if !s.get(bucketPreferences, keyFavorites, &ids) {
		return nil
	}
	return ids
}

func (s *PreferenceStore) SaveFavoriteIDs(ids []int) error {
	return s.set(bucketPreferences, keyFavorites, ids)
}

// === View mode ===

// ViewMode returns the persisted view mode, falling back when the stored
// value is missing or not a known mode.
func (s *PreferenceStore) ViewMode(fallback domain.ViewMode) domain.ViewMode {
	var raw string
	if !s.get(bucketPreferences, keyViewMode, &raw) {
		return fallback
	}
	switch mode := domain.ViewMode(raw); mode {
	case domain.ViewGrid, domain.ViewList:
		return mode
	default:
		return fallback
	}
}

func (s *PreferenceStore) SaveViewMode(mode domain.ViewMode) error {
	return s.set(bucketPreferences, keyViewMode, string(mode))
}
