package finder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/smrd"
)

// SMRD finds the side muon range detector modules and bars. A module node
// is named MRDArm:<yoke><layer><slot> or MRDSide:<yoke><layer><slot>, one
// decimal digit each.
type SMRD struct {
	clam  int
	yoke  int
	layer int
	slot  int
	bar   int
}

func NewSMRD() *SMRD {
	return &SMRD{clam: -1, yoke: -1, layer: -1, slot: -1, bar: -1}
}

// leadingDigits returns the decimal digits at the start of s, at most n
func leadingDigits(s string, n int) string {
	end := 0
	for end < len(s) && end < n && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func (f *SMRD) Search(names []string) (Result, geomid.GeometryId, error) {
	in, ok := scope(names, 4, "MRD")
	if !ok {
		return noMatch()
	}
	if !in || under(names, "Bar_") {
		return stop()
	}

	switch {
	case strings.Contains(names[3], "LeftClam_"):
		f.clam = smrd.LeftClam
	case strings.Contains(names[3], "RightClam_"):
		f.clam = smrd.RightClam
	default:
		f.clam = -1
	}

	name := leaf(names)
	switch {
	case strings.Contains(name, "MRDArm:"), strings.Contains(name, "MRDSide:"):
		code := leadingDigits(name[strings.Index(name, ":")+1:], 3)
		n, err := strconv.Atoi(code)
		if err != nil {
			return NoMatch, geomid.Empty(), fmt.Errorf("%w: SMRD module %q: %v", ErrBadNodeName, name, err)
		}
		f.slot = n % 10
		f.layer = (n / 10) % 10
		f.yoke = n / 100
		f.bar = -1
		return assign(smrd.Module(f.clam, f.yoke, f.layer, f.slot))
	case strings.Contains(name, "Bar_"):
		f.bar++
		return assign(smrd.Bar(f.clam, f.yoke, f.layer, f.slot, f.bar))
	}
	return noMatch()
}
