package service

import (
	"context"
	"strings"
	"sync"

	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
	"golang.org/x/sync/singleflight"

	apperrors "github.com/allisson/certmaker/internal/errors"
)

// BlobAssetStore resolves background assets from an ordered list of candidate
// locations, each opened as a fileblob bucket. The first location containing
// the asset wins. Resolved bytes are cached process-wide; the cache is
// write-once per asset key, so concurrent readers share bytes without locking.
type BlobAssetStore struct {
	locations []string
	cache     sync.Map // map[string][]byte
	group     singleflight.Group
}

// NewBlobAssetStore creates an asset store over the given candidate locations.
// Locations are searched in order on every cache miss.
func NewBlobAssetStore(locations []string) *BlobAssetStore {
	return &BlobAssetStore{locations: locations}
}

// Background returns the raw bytes of a background asset, loading and caching
// it on first access. Concurrent first loads of the same asset are collapsed
// into a single read.
func (s *BlobAssetStore) Background(ctx context.Context, name string) ([]byte, error) {
	if cached, ok := s.cache.Load(name); ok {
		return cached.([]byte), nil
	}

	loaded, err, _ := s.group.Do(name, func() (any, error) {
		return s.load(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	data := loaded.([]byte)
	s.cache.Store(name, data)
	return data, nil
}

// load searches every candidate location in order and returns the first hit.
func (s *BlobAssetStore) load(ctx context.Context, name string) ([]byte, error) {
	for _, location := range s.locations {
		bucket, err := fileblob.OpenBucket(location, nil)
		if err != nil {
			// Location does not exist or is unreadable; keep searching.
			continue
		}

		data, err := bucket.ReadAll(ctx, name)
		closeErr := bucket.Close()
		if err == nil && closeErr == nil {
			return data, nil
		}
		if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return nil, apperrors.Wrapf(
				apperrors.ErrResourceMissing,
				"reading background asset %q from %s: %v", name, location, err,
			)
		}
	}

	return nil, apperrors.Wrapf(
		apperrors.ErrResourceMissing,
		"background asset %q not found (searched: %s)", name, strings.Join(s.locations, ", "),
	)
}
