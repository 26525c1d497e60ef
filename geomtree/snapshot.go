package geomtree

import (
	"regexp"
	"sort"
	"strings"
)

// Snapshot is the persisted form of one or more geometry trees. A snapshot
// file usually holds one tree, or one tree per alignment of the same
// geometry, each under its own name.
type Snapshot struct {
	Trees []TreeSpec `cbor:"trees"`
}

// TreeSpec is a named tree
type TreeSpec struct {
	Name string   `cbor:"name"`
	Root NodeSpec `cbor:"root"`
}

// NodeSpec is a placed volume. A zero HalfSize marks an assembly, which
// has no extent of its own.
type NodeSpec struct {
	Name        string     `cbor:"name"`
	Volume      string     `cbor:"volume"`
	Translation Vector     `cbor:"translation"`
	Rotation    []float64  `cbor:"rotation,omitempty"`
	HalfSize    Vector     `cbor:"halfSize"`
	Daughters   []NodeSpec `cbor:"daughters,omitempty"`
}

var copyNumber = regexp.MustCompile(`_[0-9]+$`)

// NewNode builds a node spec named <volume>_<copy>. The volume name is the
// node name without the copy number.
func NewNode(name string, t Vector, daughters ...NodeSpec) NodeSpec {
	return NodeSpec{
		Name:        name,
		Volume:      copyNumber.ReplaceAllString(name, ""),
		Translation: t,
		Daughters:   daughters,
	}
}

// WithHalfSize gives the node a box shaped extent
func (n NodeSpec) WithHalfSize(h Vector) NodeSpec {
	n.HalfSize = h
	return n
}

// WithRotation gives the node a row major rotation
func (n NodeSpec) WithRotation(r [9]float64) NodeSpec {
	n.Rotation = append([]float64(nil), r[:]...)
	return n
}

// Matrix is the local transform of the node
func (n NodeSpec) Matrix() Matrix {
	m := Translation(n.Translation)
	if len(n.Rotation) == len(m.Rotation) {
		copy(m.Rotation[:], n.Rotation)
	}
	return m
}

// Names lists the tree names in the snapshot, sorted
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.Trees))
	for _, t := range s.Trees {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Tree returns the tree with the given name
func (s *Snapshot) Tree(name string) (TreeSpec, bool) {
	for _, t := range s.Trees {
		if t.Name == name {
			return t, true
		}
	}
	return TreeSpec{}, false
}

// Match returns the first tree, in name order, whose name matches re
func (s *Snapshot) Match(re *regexp.Regexp) (TreeSpec, bool) {
	for _, name := range s.Names() {
		if re.MatchString(name) {
			return s.Tree(name)
		}
	}
	return TreeSpec{}, false
}

// Walk calls fn for every node, parents before daughters. The path is the
// slash separated list of node names from the root.
func (t TreeSpec) Walk(fn func(path string, n NodeSpec)) {
	var walk func(prefix []string, n NodeSpec)
	walk = func(prefix []string, n NodeSpec) {
		names := append(prefix[:len(prefix):len(prefix)], n.Name)
		fn("/"+strings.Join(names, "/"), n)
		for _, d := range n.Daughters {
			walk(names, d)
		}
	}
	walk(nil, t.Root)
}
