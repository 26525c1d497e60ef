// Package finder recognises detector volumes by the names of the nodes
// leading to them and assigns their geometry ids.
//
// A finder is called once for every node of a depth first walk, with the
// names of the nodes from the top of the walk down to the current node.
// Finders keep counters between calls (the current plane, module or bar)
// so they depend on the walk visiting daughters in their natural order.
// A fresh set of finders is needed for every walk.
package finder

import (
	"strings"

	"github.com/forestrie/go-geomid/geomid"
)

// Result is what a finder decided about a node
type Result int

const (
	// NoMatch assigns nothing and keeps searching the node's daughters
	NoMatch Result = iota
	// Assign registers the returned id for the node
	Assign
	// Stop assigns nothing and stops this finder searching below the node
	Stop
)

func (r Result) String() string {
	switch r {
	case NoMatch:
		return "no-match"
	case Assign:
		return "assign"
	case Stop:
		return "stop"
	}
	return "unknown"
}

// Finder searches one node. The id is only meaningful with Assign. An
// error means the finder could not make sense of the node; the caller
// treats it as NoMatch.
type Finder interface {
	Search(names []string) (Result, geomid.GeometryId, error)
}

// Func adapts a function to the Finder interface
type Func func(names []string) (Result, geomid.GeometryId, error)

func (f Func) Search(names []string) (Result, geomid.GeometryId, error) {
	return f(names)
}

// Factory makes a fresh set of finders, with their counters unset
type Factory func() []Finder

// Combine returns a factory making the finders of every factory, in order
func Combine(factories ...Factory) Factory {
	return func() []Finder {
		var finders []Finder
		for _, f := range factories {
			finders = append(finders, f()...)
		}
		return finders
	}
}

// CaptainFinders recognises the liquid argon cryostat
func CaptainFinders() Factory {
	return func() []Finder {
		return []Finder{NewCryostat()}
	}
}

// ND280Finders recognises the near detector subsystems, off axis and
// INGRID
func ND280Finders() Factory {
	return func() []Finder {
		return []Finder{
			NewP0D(),
			NewTPC(),
			NewFGD(),
			NewECal(),
			NewSMRD(),
			NewINGRID(),
		}
	}
}

// assign is the common successful return
func assign(id geomid.GeometryId) (Result, geomid.GeometryId, error) {
	return Assign, id, nil
}

func noMatch() (Result, geomid.GeometryId, error) {
	return NoMatch, geomid.Empty(), nil
}

func stop() (Result, geomid.GeometryId, error) {
	return Stop, geomid.Empty(), nil
}

// leaf returns the name of the current node
func leaf(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}

// parent returns the name of the parent of the current node, or ""
func parent(names []string) string {
	if len(names) < 2 {
		return ""
	}
	return names[len(names)-2]
}

// under returns true if the parent name contains any of the patterns
func under(names []string, patterns ...string) bool {
	p := parent(names)
	for _, pattern := range patterns {
		if strings.Contains(p, pattern) {
			return true
		}
	}
	return false
}

// scope reports whether the node at depth i names the subsystem. ok is
// false when the walk has not reached depth i yet.
func scope(names []string, i int, patterns ...string) (in bool, ok bool) {
	if len(names) <= i {
		return false, false
	}
	for _, pattern := range patterns {
		if strings.Contains(names[i], pattern) {
			return true, true
		}
	}
	return false, true
}
