package bolt

import (
	"context"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/repository"
)

var (
	keyAccessToken  = []byte("access_token")
	keyRefreshToken = []byte("refresh_token")
	keyTenantSlug   = []byte("tenant_slug")
)

// Store keeps the three session slots in a single BoltDB bucket so a
// login or logout is one transaction and the session can never be
// half written.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

var _ repository.CredentialStore = (*Store)(nil)

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "credentials"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Load reads all three slots. Absent slots come back as empty strings,
// never as an error.
func (s *Store) Load(ctx context.Context) (domain.Credentials, error) {
	if s == nil || s.db == nil {
		return domain.Credentials{}, bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, err
	}

	var creds domain.Credentials
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		creds.AccessToken = string(b.Get(keyAccessToken))
		creds.RefreshToken = string(b.Get(keyRefreshToken))
		creds.TenantSlug = string(b.Get(keyTenantSlug))
		return nil
	})
	return creds, err
}

// Save writes all three slots in one transaction, overwriting any
// prior session.
func (s *Store) Save(ctx context.Context, creds domain.Credentials) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if err := b.Put(keyAccessToken, []byte(creds.AccessToken)); err != nil {
			return err
		}
		if err := b.Put(keyRefreshToken, []byte(creds.RefreshToken)); err != nil {
			return err
		}
		return b.Put(keyTenantSlug, []byte(creds.TenantSlug))
	})
}

// Clear removes all three slots in one transaction. Clearing an
// already-empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if err := b.Delete(keyAccessToken); err != nil {
			return err
		}
		if err := b.Delete(keyRefreshToken); err != nil {
			return err
		}
		return b.Delete(keyTenantSlug)
	})
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
