package finder

import (
	"strings"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/fgd"
)

// FGD finds the fine grained detectors, their scintillator layers, water
// targets and bars.
type FGD struct {
	fgd    int
	module int
	layer  int
	bar    int
	target int
}

func NewFGD() *FGD {
	return &FGD{fgd: -1, module: -1, layer: -1, bar: -1, target: -1}
}

func (f *FGD) reset(which int) {
	f.fgd = which
	f.module = -1
	f.layer = -1
	f.bar = -1
	f.target = -1
}

func (f *FGD) Search(names []string) (Result, geomid.GeometryId, error) {
	in, ok := scope(names, 5, "FGD")
	if !ok {
		return noMatch()
	}
	if !in || under(names, "Bar_") {
		return stop()
	}
	name := leaf(names)

	switch {
	case strings.Contains(name, "FGD1_"):
		f.reset(0)
		return assign(fgd.FGD1())
	case strings.Contains(name, "FGD2_"):
		f.reset(1)
		return assign(fgd.FGD2())
	case strings.Contains(name, "ScintX_"):
		f.module++
		f.layer = fgd.LayerX
		f.bar = -1
		return assign(fgd.Layer(f.fgd, f.module, f.layer))
	case strings.Contains(name, "ScintY_"):
		f.layer = fgd.LayerY
		f.bar = -1
		return assign(fgd.Layer(f.fgd, f.module, f.layer))
	case strings.Contains(name, "Water"):
		f.target++
		return assign(fgd.Target(f.fgd, f.target))
	case strings.Contains(name, "Bar_"):
		f.bar++
		return assign(fgd.Bar(f.fgd, f.module, f.layer, f.bar))
	}
	return noMatch()
}
