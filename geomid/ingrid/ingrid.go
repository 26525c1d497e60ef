// Package ingrid holds the geometry id layout for INGRID, the on axis
// array of iron and scintillator modules with its veto planes.
package ingrid

import (
	"github.com/forestrie/go-geomid/geomid"
)

const (
	SeqScintillator = iota
)

// Object types
const (
	Module = iota
	Veto
)

// Projections
const (
	Horizontal = iota
	Vertical
)

// ProtonModule is the module number given to the proton module, which sits
// apart from the numbered standard modules.
const ProtonModule = 16

// Scintillator layout
const (
	ObjTypeMSB = geomid.SeqIdLSB - 1
	ObjTypeLSB = ObjTypeMSB

	ModNumMSB = ObjTypeLSB - 1
	ModNumLSB = ModNumMSB - 4

	TrkNumMSB = ModNumLSB - 1
	TrkNumLSB = TrkNumMSB - 4

	ProjMSB = TrkNumLSB - 1
	ProjLSB = ProjMSB

	SciNumMSB = ProjLSB - 1
	SciNumLSB = 0
)

func IsINGRID(id geomid.GeometryId) bool {
	return id.Subsystem() == geomid.INGRID
}

// Scintillator is a single bar of a module or a veto plane
func Scintillator(objType, obj, trk, proj, scinti int) geomid.GeometryId {
	return geomid.NewBuilder("ingrid.Scintillator", geomid.INGRID).
		Seq(SeqScintillator).
		Set(objType, ObjTypeMSB, ObjTypeLSB).
		Set(obj, ModNumMSB, ModNumLSB).
		Set(trk, TrkNumMSB, TrkNumLSB).
		Set(proj, ProjMSB, ProjLSB).
		Set(scinti, SciNumMSB, SciNumLSB).
		Build()
}

// ModScintillator is a bar in tracking plane trk of module obj
func ModScintillator(obj, trk, proj, scinti int) geomid.GeometryId {
	return Scintillator(Module, obj, trk, proj, scinti)
}

// VertVetoScintillator is a bar of vertical veto plane obj
func VertVetoScintillator(obj, scinti int) geomid.GeometryId {
	return Scintillator(Veto, obj, 0, Vertical, scinti)
}

// HorzVetoScintillator is a bar of horizontal veto plane obj
func HorzVetoScintillator(obj, scinti int) geomid.GeometryId {
	return Scintillator(Veto, obj, 0, Horizontal, scinti)
}

func IsScintillator(id geomid.GeometryId) bool {
	return id.Matches(geomid.INGRID, SeqScintillator)
}

func field(id geomid.GeometryId, msb, lsb uint) int {
	if !IsScintillator(id) {
		return -1
	}
	return id.Field(msb, lsb)
}

func GetObjType(id geomid.GeometryId) int      { return field(id, ObjTypeMSB, ObjTypeLSB) }
func GetModule(id geomid.GeometryId) int       { return field(id, ModNumMSB, ModNumLSB) }
func GetTracker(id geomid.GeometryId) int      { return field(id, TrkNumMSB, TrkNumLSB) }
func GetProjection(id geomid.GeometryId) int   { return field(id, ProjMSB, ProjLSB) }
func GetScintillator(id geomid.GeometryId) int { return field(id, SciNumMSB, SciNumLSB) }
