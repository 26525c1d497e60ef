// Package geomtree describes the geometry tree the mapping engine works
// against, and provides an in memory implementation of it.
//
// A Tree has a single current node cursor shared by everything that uses
// the tree. Code that moves the cursor on behalf of someone else saves it
// first and restores it on every exit path:
//
//	defer geomtree.SaveCursor(t)()
package geomtree

import (
	"github.com/google/uuid"
)

// NodeKey addresses a node within one load of a tree. Keys are not stable
// across loads.
type NodeKey int

// NoNode is never a valid key
const NoNode NodeKey = -1

// Vector is a point or displacement in millimetres
type Vector [3]float64

// Tree is the cursor based view of a loaded geometry
type Tree interface {
	// Name carries the content hash and alignment of the tree once they
	// are known.
	Name() string
	SetName(name string)

	// Session identifies this load of the tree
	Session() uuid.UUID

	// TopVolume is the volume name of the top node
	TopVolume() string
	// SetTopVolume makes the first node of the named volume the top node
	SetTopVolume(volume string) bool

	TopNode() NodeKey
	CurrentNode() NodeKey

	CdNode(key NodeKey) bool
	CdTop()
	// CdUp does nothing at the top node
	CdUp()
	CdDown(i int) bool
	// CdPath moves to the node with the given Path
	CdPath(path string) bool
	NumDaughters() int

	// NodeName is the name of the current node, usually <volume>_<copy>
	NodeName() string
	// Path is the slash separated list of node names from the top node to
	// the current node.
	Path() string

	// LocalTranslation is the offset of the current node in its parent
	LocalTranslation() Vector
	// LocalToMaster transforms a point in the current node frame to the
	// top node frame.
	LocalToMaster(local Vector) Vector
	// FindNode moves the cursor to the deepest node containing the point
	FindNode(master Vector) bool

	PushPath()
	PopPath() bool

	// Lock freezes the tree structure, alignment included
	Lock()
	Unlock()
	Locked() bool

	ClearPhysicalNodes()
	// AlignNode replaces the transform of the node at path with its
	// original transform composed with correction.
	AlignNode(path string, correction Matrix) error
	// RefreshPhysicalNodes applies the aligned transforms and locks the
	// tree.
	RefreshPhysicalNodes()
}

// SaveCursor pushes the current path and returns the function restoring it
func SaveCursor(t Tree) func() {
	t.PushPath()
	return func() {
		t.PopPath()
	}
}
