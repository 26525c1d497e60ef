// Package smrd holds the geometry id layout for the side muon range
// detector, the scintillator slotted into the gaps of the magnet yoke.
package smrd

import (
	"github.com/forestrie/go-geomid/geomid"
)

const (
	SeqGlobal = iota
	SeqScintillator
)

const (
	KindModule = iota
)

// Module fields inside the global value
const (
	ModuleClamMSB = geomid.GlobalFieldMSB
	ModuleClamLSB = ModuleClamMSB

	ModuleYokeMSB = ModuleClamLSB - 1
	ModuleYokeLSB = ModuleYokeMSB - 3

	ModuleLayerMSB = ModuleYokeLSB - 1
	ModuleLayerLSB = ModuleLayerMSB - 3

	ModuleSlotMSB = ModuleLayerLSB - 1
	ModuleSlotLSB = ModuleSlotMSB - 3
)

// Bar layout
const (
	BarClamMSB = geomid.SeqIdLSB - 1
	BarClamLSB = BarClamMSB

	BarYokeMSB = BarClamLSB - 1
	BarYokeLSB = BarYokeMSB - 3

	BarLayerMSB = BarYokeLSB - 1
	BarLayerLSB = BarLayerMSB - 3

	BarSlotMSB = BarLayerLSB - 1
	BarSlotLSB = BarSlotMSB - 3

	BarNumberMSB = BarSlotLSB - 1
	BarNumberLSB = 0
)

const (
	LeftClam = iota
	RightClam
)

func IsSMRD(id geomid.GeometryId) bool {
	return id.Subsystem() == geomid.SMRD
}

// Module is a scintillator module in one slot of the yoke
func Module(clam, yoke, layer, slot int) geomid.GeometryId {
	return geomid.NewGlobal("smrd.Module", geomid.SMRD, SeqGlobal, KindModule).
		Set(clam, ModuleClamMSB, ModuleClamLSB).
		Set(yoke, ModuleYokeMSB, ModuleYokeLSB).
		Set(layer, ModuleLayerMSB, ModuleLayerLSB).
		Set(slot, ModuleSlotMSB, ModuleSlotLSB).
		Build()
}

func isModule(id geomid.GeometryId) bool {
	return id.Matches(geomid.SMRD, SeqGlobal) &&
		id.Field(geomid.GlobalKindMSB, geomid.GlobalKindLSB) == KindModule
}

func moduleField(id geomid.GeometryId, msb, lsb uint) int {
	if !isModule(id) {
		return -1
	}
	return id.Field(msb, lsb)
}

func GetModuleClam(id geomid.GeometryId) int  { return moduleField(id, ModuleClamMSB, ModuleClamLSB) }
func GetModuleYoke(id geomid.GeometryId) int  { return moduleField(id, ModuleYokeMSB, ModuleYokeLSB) }
func GetModuleLayer(id geomid.GeometryId) int { return moduleField(id, ModuleLayerMSB, ModuleLayerLSB) }
func GetModuleSlot(id geomid.GeometryId) int  { return moduleField(id, ModuleSlotMSB, ModuleSlotLSB) }

// Bar is a single scintillator bar of a module
func Bar(clam, yoke, layer, slot, bar int) geomid.GeometryId {
	return geomid.NewBuilder("smrd.Bar", geomid.SMRD).
		Seq(SeqScintillator).
		Set(clam, BarClamMSB, BarClamLSB).
		Set(yoke, BarYokeMSB, BarYokeLSB).
		Set(layer, BarLayerMSB, BarLayerLSB).
		Set(slot, BarSlotMSB, BarSlotLSB).
		Set(bar, BarNumberMSB, BarNumberLSB).
		Build()
}

func IsBar(id geomid.GeometryId) bool {
	return id.Matches(geomid.SMRD, SeqScintillator)
}

func barField(id geomid.GeometryId, msb, lsb uint) int {
	if !IsBar(id) {
		return -1
	}
	return id.Field(msb, lsb)
}

func GetBarClam(id geomid.GeometryId) int   { return barField(id, BarClamMSB, BarClamLSB) }
func GetBarYoke(id geomid.GeometryId) int   { return barField(id, BarYokeMSB, BarYokeLSB) }
func GetBarLayer(id geomid.GeometryId) int  { return barField(id, BarLayerMSB, BarLayerLSB) }
func GetBarSlot(id geomid.GeometryId) int   { return barField(id, BarSlotMSB, BarSlotLSB) }
func GetBarNumber(id geomid.GeometryId) int { return barField(id, BarNumberMSB, BarNumberLSB) }
