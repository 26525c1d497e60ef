// Package cryostat holds the geometry id layout for the liquid argon
// cryostat: the detector, its drift region, the wire planes, the wires and
// the light collection volumes.
//
// Sequence Global:
//
//	bits 20..13  kind (Cryostat, DriftRegion, WirePlane, LightSensor, WavelengthShifter)
//	bits 12..0   kind specific value (plane number, sensor number)
//
// Sequence Wire:
//
//	bits 20..13  plane number
//	bits 12..0   wire number, 0 is the wire at the most negative coordinate
package cryostat

import (
	"github.com/forestrie/go-geomid/geomid"
)

// Sequence ids
const (
	SeqGlobal = iota
	SeqWire
)

// Kinds of global volume
const (
	KindCryostat = iota
	KindDriftRegion
	KindWirePlane
	KindLightSensor
	KindWavelengthShifter
)

const (
	WirePlaneMSB = geomid.SeqIdLSB - 1
	WirePlaneLSB = WirePlaneMSB - 7

	WireNumberMSB = WirePlaneLSB - 1
	WireNumberLSB = WireNumberMSB - 12
)

// Plane numbers as assigned by the finder
const (
	PlaneX = iota
	PlaneV
	PlaneU
)

// IsCryostat returns true if the id belongs to the cryostat
func IsCryostat(id geomid.GeometryId) bool {
	return id.Subsystem() == geomid.Cryostat
}

// Detector is the id of the whole cryostat
func Detector() geomid.GeometryId {
	return geomid.NewGlobal("cryostat.Detector", geomid.Cryostat, SeqGlobal, KindCryostat).
		Set(0, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

// Drift is the id of the drift region
func Drift() geomid.GeometryId {
	return geomid.NewGlobal("cryostat.Drift", geomid.Cryostat, SeqGlobal, KindDriftRegion).
		Set(0, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

// Plane is the id of a wire plane
func Plane(plane int) geomid.GeometryId {
	return geomid.NewGlobal("cryostat.Plane", geomid.Cryostat, SeqGlobal, KindWirePlane).
		Set(plane, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

// GetPlane returns the plane number of a plane id, or -1
func GetPlane(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.Cryostat, SeqGlobal, KindWirePlane)
}

// Wire is the id of a single wire. Only the bit widths are checked, a wire
// number beyond the end of a real plane still gives a valid looking id.
func Wire(plane, wire int) geomid.GeometryId {
	return geomid.NewBuilder("cryostat.Wire", geomid.Cryostat).
		Seq(SeqWire).
		Set(plane, WirePlaneMSB, WirePlaneLSB).
		Set(wire, WireNumberMSB, WireNumberLSB).
		Build()
}

// IsWire returns true if the id is a wire
func IsWire(id geomid.GeometryId) bool {
	return id.Matches(geomid.Cryostat, SeqWire)
}

// GetWirePlane returns the plane of a wire id, or -1
func GetWirePlane(id geomid.GeometryId) int {
	if !IsWire(id) {
		return -1
	}
	return id.Field(WirePlaneMSB, WirePlaneLSB)
}

// GetWireNumber returns the wire number of a wire id, or -1
func GetWireNumber(id geomid.GeometryId) int {
	if !IsWire(id) {
		return -1
	}
	return id.Field(WireNumberMSB, WireNumberLSB)
}

// Photosensor is the id of a light sensor
func Photosensor(sensor int) geomid.GeometryId {
	return geomid.NewGlobal("cryostat.Photosensor", geomid.Cryostat, SeqGlobal, KindLightSensor).
		Set(sensor, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

// GetPhotosensor returns the sensor number of a light sensor id, or -1
func GetPhotosensor(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.Cryostat, SeqGlobal, KindLightSensor)
}

// IsPhotosensor returns true if the id is a light sensor
func IsPhotosensor(id geomid.GeometryId) bool {
	return GetPhotosensor(id) >= 0
}

// WavelengthShifter is the id of a wavelength shifter plate
func WavelengthShifter(shifter int) geomid.GeometryId {
	return geomid.NewGlobal("cryostat.WavelengthShifter", geomid.Cryostat, SeqGlobal, KindWavelengthShifter).
		Set(shifter, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

// GetWavelengthShifter returns the shifter number, or -1
func GetWavelengthShifter(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.Cryostat, SeqGlobal, KindWavelengthShifter)
}
