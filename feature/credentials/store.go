package credentials

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by a Store when no credential has the requested id.
var ErrNotFound = errors.New("credential not found")

// Store reads credentials by id.
type Store interface {
	Get(ctx context.Context, id string) (*Credential, error)
}

// GormStore reads credentials from the api_credentials table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the credential with id, or ErrNotFound.
func (s *GormStore) Get(ctx context.Context, id string) (*Credential, error) {
	var cred Credential
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// Save inserts or replaces a credential. Used by migrations and tests; issuing
// credentials over HTTP is not supported.
func (s *GormStore) Save(ctx context.Context, cred *Credential) error {
	return s.db.WithContext(ctx).Save(cred).Error
}
