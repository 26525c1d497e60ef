// Package fgd holds the geometry id layout for the fine grained detectors.
//
// Global volumes pack their own fields inside the global value:
//
//	FGD     value = fgd
//	Target  value = fgd[12] target[11:0]
//	Layer   value = fgd[12] layer[11] module[10:0]
//
// Scintillator bars use their own sequence.
package fgd

import (
	"github.com/forestrie/go-geomid/geomid"
)

const (
	SeqGlobal = iota
	SeqBar
)

const (
	KindFGD = iota
	KindTarget
	KindLayer
)

// Fields inside the global value
const (
	GlobalFGDMSB = geomid.GlobalFieldMSB
	GlobalFGDLSB = GlobalFGDMSB

	TargetNumberMSB = GlobalFGDLSB - 1
	TargetNumberLSB = 0

	LayerLayerMSB = GlobalFGDLSB - 1
	LayerLayerLSB = LayerLayerMSB

	LayerModuleMSB = LayerLayerLSB - 1
	LayerModuleLSB = 0
)

// Bar layout
const (
	BarFGDMSB = geomid.SeqIdLSB - 1
	BarFGDLSB = BarFGDMSB

	BarModuleMSB = BarFGDLSB - 1
	BarModuleLSB = BarModuleMSB - 6

	BarLayerMSB = BarModuleLSB - 1
	BarLayerLSB = BarLayerMSB

	BarNumberMSB = BarLayerLSB - 1
	BarNumberLSB = 0
)

const MaxFGD = 1

// Layers within a module
const (
	LayerX = iota
	LayerY
)

func IsFGD(id geomid.GeometryId) bool {
	return id.Subsystem() == geomid.FGD
}

func checkFGD(b *geomid.Builder, fgd int) *geomid.Builder {
	return b.Require(fgd >= 0 && fgd <= MaxFGD, "FGD out of range [0,%d]: %d", MaxFGD, fgd)
}

// FGD is the id of a whole FGD, numbered from 0
func FGD(fgd int) geomid.GeometryId {
	return checkFGD(geomid.NewGlobal("fgd.FGD", geomid.FGD, SeqGlobal, KindFGD), fgd).
		Set(fgd, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

func FGD1() geomid.GeometryId { return FGD(0) }
func FGD2() geomid.GeometryId { return FGD(1) }

func GetFGD(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.FGD, SeqGlobal, KindFGD)
}

func IsFGD1(id geomid.GeometryId) bool { return GetFGD(id) == 0 }
func IsFGD2(id geomid.GeometryId) bool { return GetFGD(id) == 1 }

// Target is a water target in the second FGD
func Target(fgd, target int) geomid.GeometryId {
	return checkFGD(geomid.NewGlobal("fgd.Target", geomid.FGD, SeqGlobal, KindTarget), fgd).
		Set(fgd, GlobalFGDMSB, GlobalFGDLSB).
		Set(target, TargetNumberMSB, TargetNumberLSB).
		Build()
}

func isKind(id geomid.GeometryId, kind int) bool {
	return id.Matches(geomid.FGD, SeqGlobal) &&
		id.Field(geomid.GlobalKindMSB, geomid.GlobalKindLSB) == kind
}

func GetTargetFGD(id geomid.GeometryId) int {
	if !isKind(id, KindTarget) {
		return -1
	}
	return id.Field(GlobalFGDMSB, GlobalFGDLSB)
}

func GetTarget(id geomid.GeometryId) int {
	if !isKind(id, KindTarget) {
		return -1
	}
	return id.Field(TargetNumberMSB, TargetNumberLSB)
}

// Layer is one plane of bars within a module
func Layer(fgd, module, layer int) geomid.GeometryId {
	return checkFGD(geomid.NewGlobal("fgd.Layer", geomid.FGD, SeqGlobal, KindLayer), fgd).
		Set(fgd, GlobalFGDMSB, GlobalFGDLSB).
		Set(layer, LayerLayerMSB, LayerLayerLSB).
		Set(module, LayerModuleMSB, LayerModuleLSB).
		Build()
}

func GetLayerFGD(id geomid.GeometryId) int {
	if !isKind(id, KindLayer) {
		return -1
	}
	return id.Field(GlobalFGDMSB, GlobalFGDLSB)
}

func GetLayerModule(id geomid.GeometryId) int {
	if !isKind(id, KindLayer) {
		return -1
	}
	return id.Field(LayerModuleMSB, LayerModuleLSB)
}

func GetLayerNumber(id geomid.GeometryId) int {
	if !isKind(id, KindLayer) {
		return -1
	}
	return id.Field(LayerLayerMSB, LayerLayerLSB)
}

// Bar is a scintillator bar
func Bar(fgd, module, layer, bar int) geomid.GeometryId {
	return checkFGD(geomid.NewBuilder("fgd.Bar", geomid.FGD), fgd).
		Seq(SeqBar).
		Set(fgd, BarFGDMSB, BarFGDLSB).
		Set(module, BarModuleMSB, BarModuleLSB).
		Set(layer, BarLayerMSB, BarLayerLSB).
		Set(bar, BarNumberMSB, BarNumberLSB).
		Build()
}

func IsBar(id geomid.GeometryId) bool {
	return id.Matches(geomid.FGD, SeqBar)
}

func barField(id geomid.GeometryId, msb, lsb uint) int {
	if !IsBar(id) {
		return -1
	}
	return id.Field(msb, lsb)
}

func GetBarFGD(id geomid.GeometryId) int    { return barField(id, BarFGDMSB, BarFGDLSB) }
func GetBarModule(id geomid.GeometryId) int { return barField(id, BarModuleMSB, BarModuleLSB) }
func GetBarLayer(id geomid.GeometryId) int  { return barField(id, BarLayerMSB, BarLayerLSB) }
func GetBarNumber(id geomid.GeometryId) int { return barField(id, BarNumberMSB, BarNumberLSB) }
