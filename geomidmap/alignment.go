package geomidmap

import (
	"context"
	"fmt"

	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomtree"
)

// AlignmentLookup provides the alignment corrections for an event
type AlignmentLookup interface {
	// StartAlignment begins a new set of corrections and returns their id.
	// An invalid id means there are no corrections.
	StartAlignment(event Event) contenthash.AlignmentID
	// Align returns the next correction and the volume it applies to. A
	// nil matrix ends the set.
	Align(event Event) (*geomtree.Matrix, geomid.GeometryId)
	// CheckAlignment returns true if the event needs a different
	// alignment from the one in use.
	CheckAlignment(event Event) bool
}

// CheckAlignment returns true if the alignment should be (re)applied for
// event. event may be nil.
func (m *Manager) CheckAlignment(event Event) bool {
	if !m.alignment.Valid() {
		return true
	}
	if event == nil {
		return false
	}
	if event.AlignmentID().Equivalent(m.alignment) {
		return false
	}
	if m.opts.alignmentLookup == nil {
		return false
	}
	return m.opts.alignmentLookup.CheckAlignment(event)
}

// ApplyAlignment replaces any alignment of the tree with the corrections
// from the AlignmentLookup. Without a lookup, or when the lookup has no
// corrections, the alignment becomes EmptyAlignment.
func (m *Manager) ApplyAlignment(ctx context.Context, event Event) error {
	if m.tree == nil {
		m.log.Errorf("alignment applied without a geometry")
		return ErrNoGeometry
	}
	if !m.hash.Valid() {
		m.log.Errorf("alignment applied with invalid geometry tables")
		return ErrInvalidHash
	}
	m.log.Debugf("apply alignment to event")

	aid, err := m.applyAlignmentLookup(ctx, event)
	if err != nil {
		m.dropAlignment()
		return err
	}
	m.alignment = aid

	name, err := contenthash.SetAlignmentInName(m.opts.prefix, m.tree.Name(), aid)
	if err != nil {
		m.log.Errorf("alignment %s not saved in the geometry name: %v", aid.Value, err)
		return nil
	}
	m.tree.SetName(name)
	return nil
}

// dropAlignment returns the tree to its nominal transforms after a
// rejected set of corrections. The alignment becomes invalid so the next
// GetGeometry applies it again.
func (m *Manager) dropAlignment() {
	m.tree.ClearPhysicalNodes()
	m.tree.RefreshPhysicalNodes()
	m.alignment = contenthash.AlignmentID{}
	if name, err := contenthash.SetAlignmentInName(m.opts.prefix, m.tree.Name(), m.alignment); err == nil {
		m.tree.SetName(name)
	}
}

func (m *Manager) applyAlignmentLookup(ctx context.Context, event Event) (contenthash.AlignmentID, error) {
	m.tree.ClearPhysicalNodes()

	var aid contenthash.AlignmentID
	lookup := m.opts.alignmentLookup
	if lookup != nil {
		aid = lookup.StartAlignment(event)
		if !aid.Valid() {
			m.log.Infof("no alignment should be applied")
		}
		count, err := m.align(ctx, lookup, event)
		m.metrics.corrections.Add(float64(count))
		if err != nil {
			return contenthash.AlignmentID{}, err
		}
		if count > 0 {
			m.log.Infof("applied %d alignment corrections", count)
		}
		if aid.Valid() && count == 0 {
			m.log.Errorf("alignment %s has no corrections", aid.Value)
			return contenthash.AlignmentID{}, fmt.Errorf("%w: %s has no corrections", ErrBadAlignment, aid.Value)
		}
		if !aid.Valid() && count > 0 {
			m.log.Errorf("%d alignment corrections without an alignment id", count)
			return contenthash.AlignmentID{}, fmt.Errorf("%w: %d corrections without an id", ErrBadAlignment, count)
		}
	}

	if !aid.Valid() {
		m.log.Debugf("no alignment id, using the empty alignment")
		aid = contenthash.EmptyAlignment()
	}
	return aid, nil
}

// align feeds every correction from lookup to the tree and returns how many
// were applied. The tree is unlocked for the duration and locked again by
// the refresh.
func (m *Manager) align(ctx context.Context, lookup AlignmentLookup, event Event) (int, error) {
	restore := geomtree.SaveCursor(m.tree)
	m.tree.Unlock()
	defer func() {
		restore()
		m.tree.RefreshPhysicalNodes()
	}()

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		correction, id := lookup.Align(event)
		if correction == nil {
			return count, nil
		}
		path := m.GetPath(id)
		if err := m.tree.AlignNode(path, *correction); err != nil {
			m.log.Errorf("alignment of %s at %s failed: %v", id, path, err)
			return count, fmt.Errorf("%w: %s: %v", ErrBadAlignment, id, err)
		}
		count++
	}
}
