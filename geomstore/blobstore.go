package geomstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/geomtree"
)

// BlobReader is the part of the azure blob store used to find and read
// snapshots
type BlobReader interface {
	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
	List(ctx context.Context, opts ...azblob.Option) (*azblob.ListerResponse, error)
}

// BlobStore finds snapshot blobs under a path prefix
type BlobStore struct {
	log    *logger.WrappedLogger
	store  BlobReader
	prefix string
}

func NewBlobStore(log *logger.WrappedLogger, store BlobReader, prefix string) *BlobStore {
	return &BlobStore{log: log, store: store, prefix: prefix}
}

// FindGeometry pages through the blobs under the prefix and returns the
// path of the first whose base name matches pattern.
func (s *BlobStore) FindGeometry(ctx context.Context, pattern *regexp.Regexp) (string, error) {
	var marker azblob.ListMarker
	for {
		r, err := s.store.List(ctx, azblob.WithListPrefix(s.prefix), azblob.WithListMarker(marker))
		if err != nil {
			return "", err
		}
		for _, it := range r.Items {
			if it.Name == nil {
				continue
			}
			if pattern.MatchString(path.Base(*it.Name)) {
				return *it.Name, nil
			}
		}
		marker = r.Marker
		if marker == nil || *marker == "" {
			break
		}
	}
	return "", fmt.Errorf("%w: %s under %s", ErrNoMatchingGeometry, pattern, s.prefix)
}

// Open reads the snapshot blob at blobPath
func (s *BlobStore) Open(ctx context.Context, blobPath string) (*geomtree.Snapshot, error) {
	rr, err := s.store.Reader(ctx, blobPath)
	if err != nil {
		return nil, err
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return nil, err
	}
	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", blobPath, err)
	}
	s.log.Debugf("geometry snapshot %s holds %v", blobPath, snap.Names())
	return snap, nil
}
