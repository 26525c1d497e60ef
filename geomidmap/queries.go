package geomidmap

import (
	"fmt"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/tpc"
	"github.com/forestrie/go-geomid/geomtree"
)

// Sentinels returned by GetPath in place of a path
const (
	PathNotAvailable = "not-available"
	PathEmpty        = "empty"
	PathInvalid      = "invalid"
)

// lookup finds the node for id. TPC pads are not nodes of the tree, so a
// pad resolves to its micromega.
func (m *Manager) lookup(id geomid.GeometryId) (geomtree.NodeKey, bool) {
	if key, ok := m.forward[id.AsInt()]; ok {
		return key, true
	}
	if tpc.IsPad(id) {
		key, ok := m.forward[tpc.MicroMegaOf(id).AsInt()]
		return key, ok
	}
	return geomtree.NoNode, false
}

// CdId moves the tree cursor to the node for id
func (m *Manager) CdId(id geomid.GeometryId) bool {
	if m.tree == nil {
		return false
	}
	key, ok := m.lookup(id)
	if !ok {
		return false
	}
	return m.tree.CdNode(key)
}

// FindGeometryId returns the id of the current node, or of its closest
// ancestor that has one. The top node never has one.
func (m *Manager) FindGeometryId() (geomid.GeometryId, bool) {
	if m.tree == nil {
		return geomid.Empty(), false
	}
	defer geomtree.SaveCursor(m.tree)()

	for {
		node := m.tree.CurrentNode()
		if node == m.tree.TopNode() {
			return geomid.Empty(), false
		}
		if id, ok := m.reverse[node]; ok {
			return geomid.GeometryId(id), true
		}
		m.tree.CdUp()
		if m.tree.CurrentNode() == node {
			return geomid.Empty(), false
		}
	}
}

// GetPosition returns the centre of the volume for id in the top node
// frame. The origin is returned when id is not mapped.
func (m *Manager) GetPosition(id geomid.GeometryId) (geomtree.Vector, bool) {
	if m.tree == nil {
		return geomtree.Vector{}, false
	}
	defer geomtree.SaveCursor(m.tree)()

	if !m.CdId(id) {
		return geomtree.Vector{}, false
	}
	return m.tree.LocalToMaster(geomtree.Vector{}), true
}

// GetGeometryId returns the id of the deepest identified volume holding
// the point.
func (m *Manager) GetGeometryId(x, y, z float64) (geomid.GeometryId, bool) {
	if m.tree == nil {
		return geomid.Empty(), false
	}
	defer geomtree.SaveCursor(m.tree)()

	if !m.tree.FindNode(geomtree.Vector{x, y, z}) {
		return geomid.Empty(), false
	}
	return m.FindGeometryId()
}

// GetPath returns the node path for id, or one of the Path sentinels
func (m *Manager) GetPath(id geomid.GeometryId) string {
	if m.tree == nil || len(m.forward) == 0 {
		return PathNotAvailable
	}
	if id == geomid.Empty() {
		return PathEmpty
	}
	defer geomtree.SaveCursor(m.tree)()

	if !m.CdId(id) {
		return PathInvalid
	}
	path := m.tree.Path()
	if tpc.IsPad(id) {
		path += fmt.Sprintf("/Pad_%d", tpc.GetPadNumber(id))
	}
	return path
}
