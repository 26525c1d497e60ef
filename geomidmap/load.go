package geomidmap

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/geomtree"
)

// Source finds and opens geometry snapshots
type Source interface {
	// FindGeometry returns the name of a snapshot whose name matches
	// pattern.
	FindGeometry(ctx context.Context, pattern *regexp.Regexp) (string, error)
	Open(ctx context.Context, name string) (*geomtree.Snapshot, error)
}

// SetInput records the snapshot carried by the input currently being read.
// A geometry in the input is preferred to one found by the GeometryLookup.
func (m *Manager) SetInput(name string, snap *geomtree.Snapshot) {
	m.inputName = name
	m.input = snap
}

func (m *Manager) ClearInput() {
	m.inputName = ""
	m.input = nil
}

// SetGeometryOverrideFile forces the geometry to be read from the named
// snapshot, whatever the events say.
func (m *Manager) SetGeometryOverrideFile(name string) { m.overrideFile = name }

// SetGeometryOverrideHash forces the geometry with hash to be used
func (m *Manager) SetGeometryOverrideHash(hash contenthash.Value) { m.overrideHash = hash }

func (m *Manager) GeometryOverrideFile() string { return m.overrideFile }

func (m *Manager) GeometryOverrideHash() contenthash.Value { return m.overrideHash }

func (m *Manager) ClearGeometryOverride() {
	m.overrideFile = ""
	m.overrideHash = contenthash.Value{}
}

// selectTree picks the tree to load from a snapshot. A tree carrying both
// the hash and the alignment is preferred, then one carrying the hash, and
// finally the tree named by the bare prefix.
func (m *Manager) selectTree(snap *geomtree.Snapshot, hash contenthash.Value, align contenthash.AlignmentID) (geomtree.TreeSpec, bool) {
	aligned := regexp.MustCompile(contenthash.AlignedNamePattern(m.opts.prefix, hash, align))
	if spec, ok := snap.Match(aligned); ok {
		return spec, true
	}
	geometry := regexp.MustCompile(contenthash.NamePattern(m.opts.prefix, hash))
	if spec, ok := snap.Match(geometry); ok {
		return spec, true
	}
	return snap.Tree(m.opts.prefix)
}

// LoadGeometry replaces the current tree with one from snap. It returns
// false when snap has no suitable tree. fileName is where snap was read
// from; a snapshot file name carries the hash of the geometry it holds and
// it is used when the tree does not carry one.
func (m *Manager) LoadGeometry(snap *geomtree.Snapshot, fileName string, hash contenthash.Value, align contenthash.AlignmentID) (bool, error) {
	if snap == nil {
		m.log.Errorf("geometry snapshot not available")
		return false, nil
	}
	spec, ok := m.selectTree(snap, hash, align)
	if !ok {
		return false, nil
	}
	tree, err := geomtree.NewMemTree(spec)
	if err != nil {
		m.log.Errorf("geometry %q in %s could not be built: %v", spec.Name, fileName, err)
		return false, err
	}

	if m.tree != nil {
		m.tree.Unlock()
	}
	m.tree = tree
	m.metrics.loads.Inc()

	base := path.Base(fileName)
	m.log.Infof("geometry %s read from %s", spec.Name, base)

	if _, err := contenthash.HashFromName(m.opts.prefix, tree.Name()); err != nil && strings.Contains(base, contenthash.FilePrefix) {
		if h, err := contenthash.HashFromFileName(base); err == nil {
			tree.SetName(contenthash.SetHashInName(m.opts.prefix, tree.Name(), h))
		}
	}

	return true, m.ResetGeometry()
}

// ReadGeometry finds the snapshot for hash in the source and loads it
func (m *Manager) ReadGeometry(ctx context.Context, hash contenthash.Value) (bool, error) {
	if m.opts.source == nil {
		m.log.Errorf("no geometry source to find %s in", hash)
		return false, ErrNoSource
	}
	name, err := m.opts.source.FindGeometry(ctx, regexp.MustCompile(contenthash.FilePattern(hash)))
	if err != nil {
		m.log.Errorf("no geometry matches hash %s: %v", hash, err)
		return false, err
	}
	return m.openAndLoad(ctx, name, hash)
}

func (m *Manager) openAndLoad(ctx context.Context, name string, hash contenthash.Value) (bool, error) {
	if m.opts.source == nil {
		m.log.Errorf("no geometry source to open %s", name)
		return false, ErrNoSource
	}
	snap, err := m.opts.source.Open(ctx, name)
	if err != nil {
		m.log.Errorf("cannot open geometry %s: %v", name, err)
		return false, err
	}
	return m.LoadGeometry(snap, name, hash, contenthash.AlignmentID{})
}

// CheckGeometry returns true if a different geometry may be needed for
// event. event may be nil.
func (m *Manager) CheckGeometry(event Event) bool {
	if m.overrideHash.Equivalent(m.hash) {
		return false
	}
	if m.overrideHash.Valid() || m.overrideFile != "" {
		return true
	}

	if event == nil {
		m.log.Errorf("no event, using suspicious geometry")
	}
	if m.tree == nil {
		m.log.Infof("reload geometry: not currently loaded")
		return true
	}
	if !m.hash.Valid() {
		m.log.Infof("reload geometry: current hash invalid")
		return true
	}
	if event == nil {
		return false
	}

	eventHash := event.GeometryHash()
	if eventHash.Equivalent(m.hash) {
		return false
	}
	// without a hash the geometry is only rechecked when the run changes
	if !eventHash.Valid() && m.context.Valid() && m.context.Run == event.Context().Run {
		return false
	}
	return true
}

// FindAndLoadGeometry looks for the geometry event needs and loads it. It
// returns true if a tree was loaded.
func (m *Manager) FindAndLoadGeometry(ctx context.Context, event Event) (bool, error) {
	if m.overrideHash.Equivalent(m.hash) {
		m.log.Debugf("override geometry already loaded")
		return false, nil
	}

	if m.overrideFile != "" || m.overrideHash.Valid() {
		if m.overrideFile != "" {
			ok, err := m.openAndLoad(ctx, m.overrideFile, contenthash.Value{})
			if ok {
				m.log.Infof("override geometry from %s", m.overrideFile)
				m.overrideHash = m.hash
				return true, err
			}
			m.log.Warnf("geometry override file %s not loaded", m.overrideFile)
		}
		if m.overrideHash.Valid() {
			ok, err := m.ReadGeometry(ctx, m.overrideHash)
			if ok {
				m.log.Infof("override geometry hash %s", m.overrideHash)
				m.overrideHash = m.hash
				return true, err
			}
		}
	}

	var hash contenthash.Value
	var align contenthash.AlignmentID
	if event != nil {
		hash = event.GeometryHash()
		align = event.AlignmentID()
	}

	if m.input == nil {
		m.log.Warnf("input not available to provide geometry")
	} else {
		ok, err := m.LoadGeometry(m.input, m.inputName, hash, align)
		if ok {
			m.log.Infof("geometry loaded from %s", m.inputName)
			return true, err
		}
		if hash.Valid() {
			m.log.Warnf("event needs geometry %s, but it is not in %s", hash, m.inputName)
		}
	}

	hash = m.lookupHash(event)
	if hash.Valid() && !m.hash.Equivalent(hash) {
		m.log.Infof("look for geometry with %s", hash)
		ok, err := m.ReadGeometry(ctx, hash)
		if ok {
			return true, err
		}
	}

	m.log.Debugf("geometry not loaded, no source provided it")
	return false, nil
}

// GetGeometry makes sure the tree is the right one for event, applying
// the alignment and running the geometry callbacks when it changes. event
// may be nil. A nested call from a callback returns the current tree
// without any checks.
func (m *Manager) GetGeometry(ctx context.Context, event Event) (geomtree.Tree, error) {
	m.lockCount++
	defer func() { m.lockCount-- }()
	if m.lockCount > 1 {
		m.log.Warnf("recursive geometry access: lock count is %d", m.lockCount)
		return m.tree, nil
	}

	changing := false
	if m.CheckGeometry(event) {
		loaded, err := m.FindAndLoadGeometry(ctx, event)
		if err != nil {
			return m.tree, err
		}
		if loaded {
			changing = true
			m.log.Debugf("loaded geometry with hash %s", m.hash)
		}
	}

	if event != nil {
		if h := event.GeometryHash(); h.Valid() && !h.Equivalent(m.hash) {
			m.log.Warnf("event geometry has changed from %s to %s", h, m.hash)
		}
		event.SetGeometryHash(m.hash)
	}

	if m.tree != nil && m.CheckAlignment(event) {
		changing = true
		if err := m.ApplyAlignment(ctx, event); err != nil {
			return m.tree, err
		}
	}

	if event != nil {
		if aid := event.AlignmentID(); aid.Valid() && !aid.Equivalent(m.alignment) {
			m.log.Warnf("event alignment has changed from %s to %s", aid.Value, m.alignment.Value)
		}
		event.SetAlignmentID(m.alignment)
	}

	if m.tree == nil {
		m.log.Errorf("no geometry is available")
		return nil, ErrNoGeometry
	}

	if changing || !m.changedHash.Equivalent(m.hash) {
		m.changedHash = m.hash
		m.applyCallbacks(event)
		m.log.Infof("loaded %s", m.tree.Name())
	}

	if event != nil {
		m.context = event.Context()
	}
	return m.tree, nil
}
