// Package store persists layout dumps by name in a bbolt database.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	bolt "go.etcd.io/bbolt"

	"panectl/internal/layout"
	"panectl/pkg/logging"
)

const (
	subsystem     = "Store"
	bucketLayouts = "layouts"
	// suggestions further away than this are not worth offering
	maxSuggestDistance = 3
)

// ErrInvalidName is returned for names that cannot be used as keys.
var ErrInvalidName = errors.New("invalid layout name")

// NotFoundError reports a missing layout and, when one is close enough, the
// stored name the caller probably meant.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("layout %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("layout %q not found", e.Name)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Store is a named collection of layout dumps.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path, creating parent directories
// as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening layout store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLayouts))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing layout store: %w", err)
	}
	logging.Debug(subsystem, "Opened layout store %s", path)
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	return nil
}

// Save stores d under name, replacing any previous layout of that name.
func (s *Store) Save(name string, d layout.Dump) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := layout.MarshalDump(d)
	if err != nil {
		return fmt.Errorf("encoding layout %q: %w", name, err)
	}
	return s.SaveRaw(name, data)
}

// SaveRaw stores an already encoded dump after checking that it decodes.
func (s *Store) SaveRaw(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if _, err := layout.UnmarshalDump(data); err != nil {
		return fmt.Errorf("refusing to store layout %q: %w", name, err)
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLayouts)).Put([]byte(name), data)
	})
	if err != nil {
		return fmt.Errorf("saving layout %q: %w", name, err)
	}
	logging.Info(subsystem, "Saved layout %q (%d bytes)", name, len(data))
	return nil
}

// LoadRaw returns the encoded dump stored under name.
func (s *Store) LoadRaw(name string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLayouts))
		v := b.Get([]byte(name))
		if v == nil {
			return &NotFoundError{Name: name, Suggestion: suggest(name, keys(b))}
		}
		// v is only valid inside the transaction
		data = slices.Clone(v)
		return nil
	})
	return data, err
}

// Load decodes the dump stored under name.
func (s *Store) Load(name string) (layout.Dump, error) {
	data, err := s.LoadRaw(name)
	if err != nil {
		return nil, err
	}
	d, err := layout.UnmarshalDump(data)
	if err != nil {
		return nil, fmt.Errorf("decoding layout %q: %w", name, err)
	}
	return d, nil
}

// List returns the stored names in key order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		names = keys(tx.Bucket([]byte(bucketLayouts)))
		return nil
	})
	return names, err
}

// Delete removes the layout stored under name.
func (s *Store) Delete(name string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLayouts))
		if b.Get([]byte(name)) == nil {
			return &NotFoundError{Name: name, Suggestion: suggest(name, keys(b))}
		}
		return b.Delete([]byte(name))
	})
	if err == nil {
		logging.Info(subsystem, "Deleted layout %q", name)
	}
	return err
}

func keys(b *bolt.Bucket) []string {
	var out []string
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		out = append(out, string(k))
	}
	return out
}

// suggest returns the candidate closest to name by edit distance, or "" when
// none is close enough.
func suggest(name string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
