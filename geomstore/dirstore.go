package geomstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/geomtree"
)

type DirLister interface {
	// ListFiles returns the paths of the files (not subdirectories) in a
	// directory
	ListFiles(string) ([]string, error)
}

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

// OSDirLister lists directories of the local file system
type OSDirLister struct{}

func (OSDirLister) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// OSOpener opens local files
type OSOpener struct{}

func (OSOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

type DirStoreOptions struct {
	lister DirLister
	opener Opener
}

type DirStoreOption func(*DirStoreOptions)

func WithDirLister(lister DirLister) DirStoreOption {
	return func(o *DirStoreOptions) {
		o.lister = lister
	}
}

func WithOpener(opener Opener) DirStoreOption {
	return func(o *DirStoreOptions) {
		o.opener = opener
	}
}

// DirStore finds snapshot files in a single directory
type DirStore struct {
	log  *logger.WrappedLogger
	dir  string
	opts DirStoreOptions
}

func NewDirStore(log *logger.WrappedLogger, dir string, opts ...DirStoreOption) *DirStore {
	options := DirStoreOptions{
		lister: OSDirLister{},
		opener: OSOpener{},
	}
	for _, o := range opts {
		o(&options)
	}
	return &DirStore{log: log, dir: dir, opts: options}
}

// Dir is the directory searched
func (s *DirStore) Dir() string { return s.dir }

// FindGeometry returns the path of the first file, in name order, whose
// base name matches pattern.
func (s *DirStore) FindGeometry(ctx context.Context, pattern *regexp.Regexp) (string, error) {
	files, err := s.opts.lister.ListFiles(s.dir)
	if err != nil {
		s.log.Errorf("geometry directory %s not available: %v", s.dir, err)
		return "", fmt.Errorf("%w: %s: %v", ErrGeometryDirUnavailable, s.dir, err)
	}
	sort.Strings(files)
	for _, f := range files {
		if pattern.MatchString(filepath.Base(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNoMatchingGeometry, pattern, s.dir)
}

// Open reads a snapshot file. A bare file name is taken to be in the
// store directory.
func (s *DirStore) Open(ctx context.Context, name string) (*geomtree.Snapshot, error) {
	if filepath.Base(name) == name {
		name = filepath.Join(s.dir, name)
	}
	r, err := s.opts.opener.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.log.Debugf("geometry snapshot %s holds %v", name, snap.Names())
	return snap, nil
}
