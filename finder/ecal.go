package finder

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/ecal"
)

// ECal finds the three electromagnetic calorimeters. The downstream ECal
// hangs directly below the top node; the barrel and P0D ECals sit at depth
// 4 inside one of the magnet clams.
type ECal struct {
	ecal     int
	clam     int
	module   int
	layer    int
	bar      int
	radiator int
}

func NewECal() *ECal {
	return &ECal{ecal: -1, clam: -1, module: -1, layer: -1, bar: -1, radiator: -1}
}

// containerModule reads the module from the last character of a barrel or
// P0D ECal container name.
var containerModule = map[byte]int{
	'0': ecal.TopModule,
	'1': ecal.SideModule,
	'2': ecal.BottomModule,
}

func (f *ECal) inScope(names []string) (in bool, ok bool) {
	if len(names) < 2 {
		return false, false
	}
	if strings.Contains(names[1], "DsECal_") {
		return true, true
	}
	return scope(names, 4, "DsECal_", "BrlECal_", "P0DECal_")
}

func (f *ECal) container(names []string, det int) (Result, geomid.GeometryId, error) {
	name := leaf(names)
	f.ecal = det
	f.layer = -1
	f.bar = -1

	if len(names) > 3 {
		switch {
		case strings.Contains(names[3], "RightClam_"):
			f.clam = ecal.RightClam
		case strings.Contains(names[3], "LeftClam_"):
			f.clam = ecal.LeftClam
		}
	}

	module, ok := containerModule[name[len(name)-1]]
	if !ok {
		return NoMatch, geomid.Empty(), fmt.Errorf("%w: ECal container %q has no module digit", ErrBadNodeName, name)
	}
	f.module = module
	return assign(ecal.Container(f.ecal, f.clam, f.module))
}

func (f *ECal) moduleOf(module int) (Result, geomid.GeometryId, error) {
	f.module = module
	f.layer = -1
	f.bar = -1
	return assign(ecal.Module(f.ecal, f.clam, f.module))
}

func (f *ECal) Search(names []string) (Result, geomid.GeometryId, error) {
	in, ok := f.inScope(names)
	if !ok {
		return noMatch()
	}
	if !in || under(names, "Bar_") {
		return stop()
	}
	name := leaf(names)

	switch {
	case strings.Contains(name, "DsECal_"):
		f.ecal = geomid.DSECal
		f.clam = ecal.NoClam
		f.module = ecal.NoModule
		f.layer = -1
		f.bar = -1
		return assign(ecal.Module(f.ecal, f.clam, f.module))
	case strings.Contains(name, "BrlECal_"):
		return f.container(names, geomid.TECal)
	case strings.Contains(name, "P0DECal_"):
		return f.container(names, geomid.PECal)

	case strings.Contains(name, "Bottom_"):
		return f.moduleOf(ecal.BottomModule)
	case strings.Contains(name, "Side_"):
		return f.moduleOf(ecal.SideModule)
	case strings.Contains(name, "Top_"):
		return f.moduleOf(ecal.TopModule)

	case strings.Contains(name, "Absorber"):
		f.radiator++
		return assign(ecal.Radiator(f.ecal, f.clam, f.module, f.radiator))
	case strings.Contains(name, "Scint"):
		f.layer++
		f.bar = -1
		return assign(ecal.Layer(f.ecal, f.clam, f.module, f.layer))
	case strings.Contains(name, "Bar_"):
		f.bar++
		return assign(ecal.Bar(f.ecal, f.clam, f.module, f.layer, f.bar))
	}
	return noMatch()
}
