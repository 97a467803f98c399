package rsu

import (
	"context"
	"encoding/json"
	"fmt"
)

// GrantsKey is the key grants are stored under. The suffix versions the blob format.
const GrantsKey = "RSU_GRANTS_V1"

// Repository persists the grants collection.
type Repository interface {
	// LoadGrants returns the stored grants, an empty list if none.
	LoadGrants(ctx context.Context) ([]Grant, error)
	SaveGrants(ctx context.Context, grants []Grant) error
}

// BlobStore is a key-value store of opaque blobs.
//
// Get returns nil and no error when the key does not exist.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// BlobRepository stores all grants as a single JSON array in a BlobStore.
type BlobRepository struct {
	store BlobStore
}

func NewBlobRepository(store BlobStore) *BlobRepository {
	return &BlobRepository{store: store}
}

func (r *BlobRepository) LoadGrants(ctx context.Context) ([]Grant, error) {
	raw, err := r.store.Get(ctx, GrantsKey)
	if err != nil {
		return nil, fmt.Errorf("cannot read grants: %w", err)
	}
	if len(raw) == 0 {
		return []Grant{}, nil
	}
	var grants []Grant
	if err := json.Unmarshal(raw, &grants); err != nil {
		return nil, fmt.Errorf("cannot decode grants: %w", err)
	}
	return grants, nil
}

func (r *BlobRepository) SaveGrants(ctx context.Context, grants []Grant) error {
	if grants == nil {
		grants = []Grant{}
	}
	raw, err := json.Marshal(grants)
	if err != nil {
		return fmt.Errorf("cannot encode grants: %w", err)
	}
	if err := r.store.Set(ctx, GrantsKey, raw); err != nil {
		return fmt.Errorf("cannot write grants: %w", err)
	}
	return nil
}
