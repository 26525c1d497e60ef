// Package tpc holds the geometry id layout for the time projection chambers.
//
// A micromega and the pads on it share one sequence. The pad flag separates
// them: a micromega id has the flag clear and a pad number of 0.
//
// Unlike most constructors these check their arguments against the real
// detector (3 modules, 2 halves, 12 micromegas per half, 1728 pads) and
// return an empty id with a warning when an argument is out of range.
package tpc

import (
	"github.com/forestrie/go-geomid/bitfield"
	"github.com/forestrie/go-geomid/geomid"
)

const (
	SeqGlobal = iota
	SeqPad
)

const (
	KindModule = iota
)

const (
	PadTPCMSB = geomid.SeqIdLSB - 1
	PadTPCLSB = PadTPCMSB - 1

	PadHalfMSB = PadTPCLSB - 1
	PadHalfLSB = PadHalfMSB

	PadMMegaMSB = PadHalfLSB - 1
	PadMMegaLSB = PadMMegaMSB - 3

	PadFlagMSB = PadMMegaLSB - 1
	PadFlagLSB = PadFlagMSB

	PadNumberMSB = PadFlagLSB - 1
	PadNumberLSB = 0
)

const (
	MaxModule    = 2
	MaxHalf      = 1
	MaxMicroMega = 11
	MaxPad       = 1727
)

// PadMask covers the pad flag and the pad number. Clearing it turns a pad id
// into the id of its micromega.
var PadMask = bitfield.Mask(PadFlagMSB, PadFlagLSB) | bitfield.Mask(PadNumberMSB, PadNumberLSB)

func IsTPC(id geomid.GeometryId) bool {
	return id.Subsystem() == geomid.TPC
}

// Module is the id of a whole TPC module, numbered from 0
func Module(tpc int) geomid.GeometryId {
	return geomid.NewGlobal("tpc.Module", geomid.TPC, SeqGlobal, KindModule).
		Require(tpc >= 0 && tpc <= MaxModule, "TPC module out of range [0,%d]: %d", MaxModule, tpc).
		Set(tpc, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

func TPC1() geomid.GeometryId { return Module(0) }
func TPC2() geomid.GeometryId { return Module(1) }
func TPC3() geomid.GeometryId { return Module(2) }

func GetModule(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.TPC, SeqGlobal, KindModule)
}

func IsTPC1(id geomid.GeometryId) bool { return GetModule(id) == 0 }
func IsTPC2(id geomid.GeometryId) bool { return GetModule(id) == 1 }
func IsTPC3(id geomid.GeometryId) bool { return GetModule(id) == 2 }

func padBuilder(what string, tpc, half, mm int) *geomid.Builder {
	return geomid.NewBuilder(what, geomid.TPC).
		Require(tpc >= 0 && tpc <= MaxModule, "TPC module out of range [0,%d]: %d", MaxModule, tpc).
		Require(half >= 0 && half <= MaxHalf, "TPC half out of range [0,%d]: %d", MaxHalf, half).
		Require(mm >= 0 && mm <= MaxMicroMega, "TPC micromega out of range [0,%d]: %d", MaxMicroMega, mm).
		Seq(SeqPad).
		Set(tpc, PadTPCMSB, PadTPCLSB).
		Set(half, PadHalfMSB, PadHalfLSB).
		Set(mm, PadMMegaMSB, PadMMegaLSB)
}

// MicroMega is the id of a micromega readout plane
func MicroMega(tpc, half, mm int) geomid.GeometryId {
	return padBuilder("tpc.MicroMega", tpc, half, mm).
		Set(0, PadFlagMSB, PadFlagLSB).
		Set(0, PadNumberMSB, PadNumberLSB).
		Build()
}

// Pad is the id of a single pad on a micromega
func Pad(tpc, half, mm, pad int) geomid.GeometryId {
	return padBuilder("tpc.Pad", tpc, half, mm).
		Require(pad >= 0 && pad <= MaxPad, "TPC pad out of range [0,%d]: %d", MaxPad, pad).
		Set(1, PadFlagMSB, PadFlagLSB).
		Set(pad, PadNumberMSB, PadNumberLSB).
		Build()
}

func IsMicroMega(id geomid.GeometryId) bool {
	if !id.Matches(geomid.TPC, SeqPad) {
		return false
	}
	return id.Field(PadFlagMSB, PadFlagLSB) == 0
}

func IsPad(id geomid.GeometryId) bool {
	if !id.Matches(geomid.TPC, SeqPad) {
		return false
	}
	return id.Field(PadFlagMSB, PadFlagLSB) == 1
}

// MicroMegaOf strips the pad fields from a pad id. Other ids are returned
// unchanged.
func MicroMegaOf(id geomid.GeometryId) geomid.GeometryId {
	if !IsPad(id) {
		return id
	}
	return geomid.GeometryId(uint32(id) &^ PadMask)
}

func padField(id geomid.GeometryId, msb, lsb uint) int {
	if !id.Matches(geomid.TPC, SeqPad) {
		return -1
	}
	return id.Field(msb, lsb)
}

func GetPadTPC(id geomid.GeometryId) int       { return padField(id, PadTPCMSB, PadTPCLSB) }
func GetPadHalf(id geomid.GeometryId) int      { return padField(id, PadHalfMSB, PadHalfLSB) }
func GetPadMicroMega(id geomid.GeometryId) int { return padField(id, PadMMegaMSB, PadMMegaLSB) }

// GetPadNumber returns the pad number, or -1 if the id is not a pad. A
// micromega id has no pad number.
func GetPadNumber(id geomid.GeometryId) int {
	if !IsPad(id) {
		return -1
	}
	return id.Field(PadNumberMSB, PadNumberLSB)
}

func GetMicroMegaTPC(id geomid.GeometryId) int    { return GetPadTPC(id) }
func GetMicroMegaHalf(id geomid.GeometryId) int   { return GetPadHalf(id) }
func GetMicroMegaNumber(id geomid.GeometryId) int { return GetPadMicroMega(id) }
