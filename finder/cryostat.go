package finder

import (
	"strings"

	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/cryostat"
)

var planeNames = []string{"XPlane_", "VPlane_", "UPlane_"}

// Cryostat finds the cryostat, drift region, wire planes, wires and the
// light collection volumes. Wires are numbered within their plane in the
// order they are met.
type Cryostat struct {
	plane       int
	wire        int
	photosensor int
	shifter     int
}

func NewCryostat() *Cryostat {
	return &Cryostat{plane: -1, wire: -1, photosensor: -1, shifter: -1}
}

func (f *Cryostat) Search(names []string) (Result, geomid.GeometryId, error) {
	if under(names, "Wire_", "PhotoCathode_", "TPB_") {
		return stop()
	}
	name := leaf(names)

	switch {
	case strings.Contains(name, "Cryostat_"):
		return assign(cryostat.Detector())
	case strings.Contains(name, "Drift_"):
		return assign(cryostat.Drift())
	}

	for plane, pattern := range planeNames {
		if strings.Contains(name, pattern) {
			f.plane = plane
			f.wire = -1
			return assign(cryostat.Plane(f.plane))
		}
	}

	switch {
	case strings.Contains(name, "Wire_"):
		// wires only count inside a plane
		if !under(names, planeNames...) {
			return noMatch()
		}
		f.wire++
		return assign(cryostat.Wire(f.plane, f.wire))
	case strings.Contains(name, "PhotoCathode_"):
		f.photosensor++
		return assign(cryostat.Photosensor(f.photosensor))
	case strings.Contains(name, "TPB_"):
		f.shifter++
		return assign(cryostat.WavelengthShifter(f.shifter))
	}
	return noMatch()
}
