package finder

import (
	"strings"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/tpc"
)

var tpcModules = []string{"TPC1_", "TPC2_", "TPC3_"}

// TPC finds the TPC modules and their micromegas. Pads are not volumes of
// the tree, the engine resolves them through the micromega.
type TPC struct {
	module    int
	half      int
	microMega int
}

func NewTPC() *TPC {
	return &TPC{module: -1, half: -1, microMega: -1}
}

func (f *TPC) Search(names []string) (Result, geomid.GeometryId, error) {
	in, ok := scope(names, 5, "TPC")
	if !ok {
		return noMatch()
	}
	if !in || under(names, "MM_") {
		return stop()
	}
	name := leaf(names)

	for module, pattern := range tpcModules {
		if strings.Contains(name, pattern) {
			f.module = module
			f.half = -1
			f.microMega = -1
			return assign(tpc.Module(f.module))
		}
	}

	switch {
	case strings.Contains(name, "Half_"):
		f.half++
		f.microMega = -1
		return noMatch()
	case strings.Contains(name, "MM_"):
		f.microMega++
		return assign(tpc.MicroMega(f.module, f.half, f.microMega))
	}
	return noMatch()
}
