package geomidmap

import (
	"fmt"

	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/finder"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomtree"
)

// maxFinders is the number of finders one keep going mask can track
const maxFinders = 64

// ResetGeometry forgets everything known about the current tree and
// rebuilds the hash and the id map from it. The tree is locked afterwards.
func (m *Manager) ResetGeometry() error {
	m.clearMap()
	m.hash = contenthash.Value{}
	m.changedHash = contenthash.Value{}
	m.alignment = contenthash.AlignmentID{}
	m.context = InvalidContext()

	if m.tree == nil {
		return ErrNoGeometry
	}

	m.BuildHashCode()
	if !m.hash.Valid() {
		m.log.Errorf("geometry %q has no valid hash", m.tree.Name())
		return ErrInvalidHash
	}

	// a tree read back after alignment says so in its name
	if aid, err := contenthash.AlignmentFromName(m.opts.prefix, m.tree.Name()); err == nil {
		m.alignment = aid
	}

	if err := m.BuildGeomIdMap(); err != nil {
		return err
	}
	m.tree.Lock()
	return nil
}

// checkTop makes the configured top volume the top node of the tree
func (m *Manager) checkTop() error {
	top := m.tree.TopVolume()
	if top == m.opts.topVolume {
		return nil
	}
	m.log.Warnf("top volume is %q, resetting it to %q", top, m.opts.topVolume)
	if !m.tree.SetTopVolume(m.opts.topVolume) {
		m.log.Errorf("volume %q is missing from the geometry", m.opts.topVolume)
		return fmt.Errorf("%w: %s", ErrTopVolumeAbsent, m.opts.topVolume)
	}
	return nil
}

// BuildGeomIdMap walks the tree from the top node, offering every node to
// a fresh set of finders. A finder that answers Stop is not asked about
// anything below that node, and the walk does not descend once every
// finder has stopped.
func (m *Manager) BuildGeomIdMap() error {
	if m.tree == nil {
		return ErrNoGeometry
	}
	if err := m.checkTop(); err != nil {
		return err
	}
	m.clearMap()

	finders := m.opts.finders()
	if len(finders) > maxFinders {
		return fmt.Errorf("%w: %d finders, at most %d", geomid.ErrArgument, len(finders), maxFinders)
	}
	// one bit per finder, 1<<64 wraps to zero so all 64 are set
	keepGoing := uint64(1)<<len(finders) - 1

	defer geomtree.SaveCursor(m.tree)()
	m.tree.CdTop()
	m.recurse(nil, finders, keepGoing)

	m.metrics.entries.Set(float64(len(m.forward)))
	m.log.Infof("geometry id map built with %d entries", len(m.forward))
	return nil
}

func (m *Manager) recurse(names []string, finders []finder.Finder, keepGoing uint64) {
	// finders may keep the slice they were given
	names = append(names[:len(names):len(names)], m.tree.NodeName())

	for i, f := range finders {
		bit := uint64(1) << i
		if keepGoing&bit == 0 {
			continue
		}
		result, id := m.search(f, names)
		switch result {
		case finder.Stop:
			keepGoing &^= bit
		case finder.Assign:
			m.register(id)
		}
	}
	if keepGoing == 0 {
		return
	}

	n := m.tree.NumDaughters()
	for i := 0; i < n; i++ {
		if !m.tree.CdDown(i) {
			continue
		}
		m.recurse(names, finders, keepGoing)
		m.tree.CdUp()
	}
}

// search asks one finder about the current node. Errors and panics are
// logged and count as NoMatch.
func (m *Manager) search(f finder.Finder, names []string) (result finder.Result, id geomid.GeometryId) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Errorf("finder failed at %s: %v", m.tree.Path(), r)
			m.metrics.rejections.WithLabelValues(rejectError).Inc()
			result, id = finder.NoMatch, geomid.Empty()
		}
	}()

	var err error
	result, id, err = f.Search(names)
	if err != nil {
		m.log.Errorf("finder failed at %s: %v", m.tree.Path(), err)
		m.metrics.rejections.WithLabelValues(rejectError).Inc()
		return finder.NoMatch, geomid.Empty()
	}
	return result, id
}

func rejectReason(id geomid.GeometryId) string {
	switch {
	case id <= 0:
		return rejectInvalid
	case id.SubsystemName() == "node":
		return rejectNode
	case id.SubsystemName() == "unknown":
		return rejectUnknown
	}
	return ""
}

// register maps id to the current node. The first node to claim an id
// keeps it.
func (m *Manager) register(id geomid.GeometryId) {
	path := m.tree.Path()
	reason := rejectReason(id)
	if reason == "" {
		if _, ok := m.forward[id.AsInt()]; ok {
			reason = rejectDuplicate
		}
	}
	if reason != "" {
		m.log.Errorf("geometry id %s (%s) at %s rejected: %s", id, id.SubsystemName(), path, reason)
		m.metrics.rejections.WithLabelValues(reason).Inc()
		return
	}

	node := m.tree.CurrentNode()
	m.forward[id.AsInt()] = node
	m.reverse[node] = id.AsInt()
	m.log.Debugf("geometry id %s at %s", id, path)
}
