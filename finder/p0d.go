package finder

import (
	"strings"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/p0d"
)

// superP0Dules in the order of their super-P0Dule numbers
var superP0Dules = []string{"USECal_", "USTarget_", "CTarget_", "CECal_"}

// P0D finds the pi-zero detector volumes below the P0D node, which sits at
// depth 4 of the ND280 tree.
type P0D struct {
	sP0Dule        int
	p0dule         int
	layer          int
	bar            int
	target         int
	ecalRadiator   int
	targetRadiator int
}

func NewP0D() *P0D {
	return &P0D{
		sP0Dule: -1, p0dule: -1, layer: -1, bar: -1,
		target: -1, ecalRadiator: -1, targetRadiator: -1,
	}
}

func (f *P0D) Search(names []string) (Result, geomid.GeometryId, error) {
	in, ok := scope(names, 4, "P0D_")
	if !ok {
		return noMatch()
	}
	if !in {
		return stop()
	}
	if under(names, "Bar_") {
		return stop()
	}
	name := leaf(names)

	if strings.Contains(name, "P0D_") {
		return assign(p0d.Detector())
	}

	for sp, pattern := range superP0Dules {
		if strings.Contains(name, pattern) {
			f.sP0Dule = sp
			return assign(p0d.SuperP0Dule(f.sP0Dule))
		}
	}

	switch {
	case strings.Contains(name, "P0Dule_"):
		f.p0dule++
		f.layer = -1
		f.bar = -1
		return assign(p0d.P0Dule(f.p0dule))

	case strings.HasPrefix(name, "Target_"):
		f.target++
		return assign(p0d.Target(f.target))

	case strings.Contains(name, "Radiator_"):
		if f.sP0Dule == p0d.USECal || f.sP0Dule == p0d.CECal {
			f.ecalRadiator++
			return assign(p0d.ECalRadiator(f.ecalRadiator))
		}
		f.targetRadiator++
		return assign(p0d.TargetRadiator(f.targetRadiator))

	case strings.Contains(name, "X_"):
		f.layer = p0d.LayerX
		f.bar = -1
		return noMatch()

	case strings.Contains(name, "Y_"):
		f.layer = p0d.LayerY
		f.bar = -1
		return noMatch()

	case strings.Contains(name, "Bar_"):
		f.bar++
		return assign(p0d.Bar(f.p0dule, f.layer, f.bar))
	}
	return noMatch()
}
