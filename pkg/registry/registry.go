// Package registry is a small bbolt-backed cache of the digest of the
// last volfile generated for each on-disk path, following the teacher
// repo's pkg/storage bucket-per-collection BoltDB conventions. It lets
// a generation run skip the write for a volfile whose content has not
// changed since the previous run.
package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var bucketDigests = []byte("digests")

// Store is the generation-digest cache.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the bbolt database at dbPath and
// ensures its bucket exists.
func Open(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open registry %s: %w", dbPath, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDigests)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open registry %s: %w", dbPath, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Digest returns the sha256 hex digest of content.
func Digest(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Unchanged reports whether path's last recorded digest equals
// content's digest. A path with no recorded digest is always
// considered changed.
func (s *Store) Unchanged(path, content string) (bool, error) {
	want := Digest(content)
	var got []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		got = tx.Bucket(bucketDigests).Get([]byte(path))
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("registry lookup %s: %w", path, err)
	}
	return got != nil && string(got) == want, nil
}

// Record stores content's digest against path, overwriting any
// previous entry.
func (s *Store) Record(path, content string) error {
	digest := Digest(content)
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDigests).Put([]byte(path), []byte(digest))
	})
	if err != nil {
		return fmt.Errorf("registry record %s: %w", path, err)
	}
	return nil
}

// Forget removes path's recorded digest, if any.
func (s *Store) Forget(path string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDigests).Delete([]byte(path))
	})
	if err != nil {
		return fmt.Errorf("registry forget %s: %w", path, err)
	}
	return nil
}
