package finder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/ingrid"
)

// INGRID finds the scintillators of the INGRID modules and veto planes.
// Every number is read from the node names, so the finder keeps no
// counters. The expected paths end in
//
//	.../ingrid*/standard<module>_*/tracker_<plane>/scinti_<h|v>_<bar>
//	.../ingrid*/proton*/ptracker_<plane>/scinti_<h|v>_<bar>
//	.../ingrid*/veto_<h|v><plane>_*/vscinti_<h|v>_<bar>
type INGRID struct{}

func NewINGRID() *INGRID {
	return &INGRID{}
}

// ancestor returns the name n levels above the current node, or ""
func ancestor(names []string, n int) string {
	if len(names) <= n {
		return ""
	}
	return names[len(names)-1-n]
}

// nameNumber reads the decimal number that starts s
func nameNumber(name, s string) (int, error) {
	n, err := strconv.Atoi(leadingDigits(s, 3))
	if err != nil {
		return 0, fmt.Errorf("%w: INGRID %q has no number", ErrBadNodeName, name)
	}
	return n, nil
}

func (f *INGRID) Search(names []string) (Result, geomid.GeometryId, error) {
	if under(names, "scinti") {
		return stop()
	}
	name := leaf(names)
	if !strings.Contains(name, "scinti") {
		return noMatch()
	}

	var proj int
	var plane string
	switch {
	case strings.Contains(name, "scinti_h"):
		proj, plane = ingrid.Horizontal, "veto_h"
	case strings.Contains(name, "scinti_v"):
		proj, plane = ingrid.Vertical, "veto_v"
	default:
		return noMatch()
	}
	scinti, err := nameNumber(name, name[strings.LastIndex(name, "_")+1:])
	if err != nil {
		return NoMatch, geomid.Empty(), err
	}

	if strings.Contains(name, "vscinti") {
		return f.veto(names, plane, proj, scinti)
	}
	return f.module(names, proj, scinti)
}

func (f *INGRID) veto(names []string, plane string, proj, scinti int) (Result, geomid.GeometryId, error) {
	if !strings.Contains(ancestor(names, 2), "ingrid") {
		return noMatch()
	}
	veto := ancestor(names, 1)
	i := strings.Index(veto, plane)
	if i < 0 {
		return noMatch()
	}
	obj, err := nameNumber(veto, veto[i+len(plane):])
	if err != nil {
		return NoMatch, geomid.Empty(), err
	}
	if proj == ingrid.Horizontal {
		return assign(ingrid.HorzVetoScintillator(obj, scinti))
	}
	return assign(ingrid.VertVetoScintillator(obj, scinti))
}

func (f *INGRID) module(names []string, proj, scinti int) (Result, geomid.GeometryId, error) {
	if !strings.Contains(ancestor(names, 3), "ingrid") {
		return noMatch()
	}
	module, tracker := ancestor(names, 2), ancestor(names, 1)

	var obj int
	switch {
	case strings.Contains(module, "standard"):
		if !strings.Contains(tracker, "tracker") {
			return noMatch()
		}
		i := strings.Index(module, "standard")
		n, err := nameNumber(module, module[i+len("standard"):])
		if err != nil {
			return NoMatch, geomid.Empty(), err
		}
		obj = n
	case strings.Contains(module, "proton"):
		if !strings.Contains(tracker, "ptracker") {
			return noMatch()
		}
		obj = ingrid.ProtonModule
	default:
		return noMatch()
	}

	trk, err := nameNumber(tracker, tracker[strings.Index(tracker, "_")+1:])
	if err != nil {
		return NoMatch, geomid.Empty(), err
	}
	return assign(ingrid.ModScintillator(obj, trk, proj, scinti))
}
