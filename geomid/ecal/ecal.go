// Package ecal holds the geometry id layout shared by the downstream, tracker
// and P0D electromagnetic calorimeters. The detector code selects the ECal
// and every constructor takes it as its first argument.
//
// The module and clam are folded into one index, module*2+clam, written
// straight after the sequence id. The downstream ECal has a single module in
// clam 0.
//
// Sequence Global:
//
//	bits 20..17  module*2+clam
//	bits 16..13  kind (ECal, Layer, Radiator, Container)
//	bits 12..0   kind specific value
//
// Sequence Bar:
//
//	bits 20..17  module*2+clam
//	bits 16..10  layer
//	bits 9..0    bar
package ecal

import (
	"github.com/forestrie/go-geomid/geomid"
)

const (
	SeqGlobal = iota
	SeqBar
)

const (
	KindECal = iota
	KindLayer
	KindRadiator
	KindContainer
)

const (
	ModuleMSB = geomid.SeqIdLSB - 1
	ModuleLSB = ModuleMSB - 3

	KindMSB = ModuleLSB - 1
	KindLSB = KindMSB - 3

	FieldMSB = KindLSB - 1
	FieldLSB = 0

	BarLayerMSB = ModuleLSB - 1
	BarLayerLSB = BarLayerMSB - 6

	BarNumberMSB = BarLayerLSB - 1
	BarNumberLSB = 0
)

// Clams. The names follow the side of the magnet as seen from upstream.
const (
	NegXClam = 0
	PosXClam = 1
	NoClam   = 0

	RightClam = NegXClam
	LeftClam  = PosXClam
)

// Modules within a clam
const (
	TopModule    = 0
	SideModule   = 1
	BottomModule = 2
	NoModule     = 0
)

func IsECal(id geomid.GeometryId) bool {
	det := id.Subsystem()
	return det == geomid.DSECal || det == geomid.TECal || det == geomid.PECal
}

func IsDSECal(id geomid.GeometryId) bool { return id.Subsystem() == geomid.DSECal }
func IsTECal(id geomid.GeometryId) bool  { return id.Subsystem() == geomid.TECal }
func IsPECal(id geomid.GeometryId) bool  { return id.Subsystem() == geomid.PECal }

var ecalNames = map[int]string{
	geomid.DSECal: "Downstream ECal",
	geomid.TECal:  "Tracker ECal",
	geomid.PECal:  "P0D ECal",
}

func start(what string, ecal, clam, module int, seq int) *geomid.Builder {
	name, ok := ecalNames[ecal]
	b := geomid.NewBuilder(what, ecal).
		Require(ok, "not an ECal detector code: %d", ecal)
	if ecal == geomid.DSECal {
		b.Require(clam == NoClam, "%s with invalid clam: %d", name, clam).
			Require(module == NoModule, "%s with invalid module: %d", name, module)
	} else {
		b.Require(clam == NegXClam || clam == PosXClam, "%s with invalid clam: %d", name, clam).
			Require(module >= TopModule && module <= BottomModule, "%s with invalid module: %d", name, module)
	}
	return b.Seq(seq).Set(module*2+clam, ModuleMSB, ModuleLSB)
}

func global(what string, ecal, clam, module, kind, value int) geomid.GeometryId {
	return start(what, ecal, clam, module, SeqGlobal).
		Set(kind, KindMSB, KindLSB).
		Set(value, FieldMSB, FieldLSB).
		Build()
}

// Module is the id of one ECal module
func Module(ecal, clam, module int) geomid.GeometryId {
	return global("ecal.Module", ecal, clam, module, KindECal, 0)
}

// Container is the volume holding a barrel or P0D ECal module. The
// downstream ECal has none.
func Container(ecal, clam, module int) geomid.GeometryId {
	if ecal == geomid.DSECal {
		return geomid.NewBuilder("ecal.Container", ecal).
			Require(false, "Downstream ECal has no container").
			Build()
	}
	return global("ecal.Container", ecal, clam, module, KindContainer, 0)
}

func Layer(ecal, clam, module, layer int) geomid.GeometryId {
	return global("ecal.Layer", ecal, clam, module, KindLayer, layer)
}

func Radiator(ecal, clam, module, radiator int) geomid.GeometryId {
	return global("ecal.Radiator", ecal, clam, module, KindRadiator, radiator)
}

func Bar(ecal, clam, module, layer, bar int) geomid.GeometryId {
	return start("ecal.Bar", ecal, clam, module, SeqBar).
		Set(layer, BarLayerMSB, BarLayerLSB).
		Set(bar, BarNumberMSB, BarNumberLSB).
		Build()
}

func isGlobal(id geomid.GeometryId, kind int) bool {
	if !IsECal(id) || id.SequenceId() != SeqGlobal {
		return false
	}
	return id.Field(KindMSB, KindLSB) == kind
}

func isBar(id geomid.GeometryId) bool {
	return IsECal(id) && id.SequenceId() == SeqBar
}

func ecalOf(ok bool, id geomid.GeometryId) int {
	if !ok {
		return -1
	}
	return id.Subsystem()
}

func clamOf(ok bool, id geomid.GeometryId) int {
	if !ok {
		return -1
	}
	return id.Field(ModuleMSB, ModuleLSB) % 2
}

func moduleOf(ok bool, id geomid.GeometryId) int {
	if !ok {
		return -1
	}
	return id.Field(ModuleMSB, ModuleLSB) / 2
}

func fieldOf(ok bool, id geomid.GeometryId, msb, lsb uint) int {
	if !ok {
		return -1
	}
	return id.Field(msb, lsb)
}

func GetModuleECal(id geomid.GeometryId) int   { return ecalOf(isGlobal(id, KindECal), id) }
func GetModuleClam(id geomid.GeometryId) int   { return clamOf(isGlobal(id, KindECal), id) }
func GetModuleNumber(id geomid.GeometryId) int { return moduleOf(isGlobal(id, KindECal), id) }

func GetContainerECal(id geomid.GeometryId) int   { return ecalOf(isGlobal(id, KindContainer), id) }
func GetContainerClam(id geomid.GeometryId) int   { return clamOf(isGlobal(id, KindContainer), id) }
func GetContainerModule(id geomid.GeometryId) int { return moduleOf(isGlobal(id, KindContainer), id) }

func GetLayerECal(id geomid.GeometryId) int   { return ecalOf(isGlobal(id, KindLayer), id) }
func GetLayerClam(id geomid.GeometryId) int   { return clamOf(isGlobal(id, KindLayer), id) }
func GetLayerModule(id geomid.GeometryId) int { return moduleOf(isGlobal(id, KindLayer), id) }
func GetLayerNumber(id geomid.GeometryId) int {
	return fieldOf(isGlobal(id, KindLayer), id, FieldMSB, FieldLSB)
}

func GetRadiatorECal(id geomid.GeometryId) int   { return ecalOf(isGlobal(id, KindRadiator), id) }
func GetRadiatorClam(id geomid.GeometryId) int   { return clamOf(isGlobal(id, KindRadiator), id) }
func GetRadiatorModule(id geomid.GeometryId) int { return moduleOf(isGlobal(id, KindRadiator), id) }
func GetRadiatorNumber(id geomid.GeometryId) int {
	return fieldOf(isGlobal(id, KindRadiator), id, FieldMSB, FieldLSB)
}

func GetBarECal(id geomid.GeometryId) int   { return ecalOf(isBar(id), id) }
func GetBarClam(id geomid.GeometryId) int   { return clamOf(isBar(id), id) }
func GetBarModule(id geomid.GeometryId) int { return moduleOf(isBar(id), id) }
func GetBarLayer(id geomid.GeometryId) int  { return fieldOf(isBar(id), id, BarLayerMSB, BarLayerLSB) }
func GetBarNumber(id geomid.GeometryId) int { return fieldOf(isBar(id), id, BarNumberMSB, BarNumberLSB) }
