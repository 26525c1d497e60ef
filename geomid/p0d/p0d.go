// Package p0d holds the geometry id layout for the pi-zero detector.
package p0d

import (
	"github.com/forestrie/go-geomid/geomid"
)

const (
	SeqGlobal = iota
	SeqScintillator
)

const (
	KindP0D = iota
	KindSuperP0Dule
	KindP0Dule
	KindTarget
	KindECalRadiator
	KindTargetRadiator
)

// Scintillator bar layout
const (
	BarSP0DuleMSB = geomid.SeqIdLSB - 1
	BarSP0DuleLSB = BarSP0DuleMSB - 1

	BarP0DuleMSB = BarSP0DuleLSB - 1
	BarP0DuleLSB = BarP0DuleMSB - 5

	BarLayerMSB = BarP0DuleLSB - 1
	BarLayerLSB = BarLayerMSB

	BarNumberMSB = BarLayerLSB - 1
	BarNumberLSB = 0
)

// Super-P0Dules in upstream to downstream order
const (
	USECal = iota
	USTarget
	CTarget
	CECal
)

// Layers within a P0Dule
const (
	LayerX = iota
	LayerY
)

func IsP0D(id geomid.GeometryId) bool {
	return id.Subsystem() == geomid.P0D
}

func global(what string, kind, value int) geomid.GeometryId {
	return geomid.NewGlobal(what, geomid.P0D, SeqGlobal, kind).
		Set(value, geomid.GlobalFieldMSB, geomid.GlobalFieldLSB).
		Build()
}

func Detector() geomid.GeometryId { return global("p0d.Detector", KindP0D, 0) }

func SuperP0Dule(sP0Dule int) geomid.GeometryId {
	return global("p0d.SuperP0Dule", KindSuperP0Dule, sP0Dule)
}

func GetSuperP0Dule(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.P0D, SeqGlobal, KindSuperP0Dule)
}

func P0Dule(p0dule int) geomid.GeometryId {
	return global("p0d.P0Dule", KindP0Dule, p0dule)
}

func GetP0Dule(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.P0D, SeqGlobal, KindP0Dule)
}

func Target(target int) geomid.GeometryId {
	return global("p0d.Target", KindTarget, target)
}

func GetTarget(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.P0D, SeqGlobal, KindTarget)
}

// ECalRadiator is a radiator in one of the ECal super-P0Dules
func ECalRadiator(radiator int) geomid.GeometryId {
	return global("p0d.ECalRadiator", KindECalRadiator, radiator)
}

func GetECalRadiator(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.P0D, SeqGlobal, KindECalRadiator)
}

// TargetRadiator is a radiator in one of the water target super-P0Dules
func TargetRadiator(radiator int) geomid.GeometryId {
	return global("p0d.TargetRadiator", KindTargetRadiator, radiator)
}

func GetTargetRadiator(id geomid.GeometryId) int {
	return geomid.GlobalField(id, geomid.P0D, SeqGlobal, KindTargetRadiator)
}

// Bar is a scintillator bar. P0Dules are numbered across the whole detector
// so the super-P0Dule field is always written as 0.
func Bar(p0dule, layer, bar int) geomid.GeometryId {
	return geomid.NewBuilder("p0d.Bar", geomid.P0D).
		Seq(SeqScintillator).
		Set(0, BarSP0DuleMSB, BarSP0DuleLSB).
		Set(p0dule, BarP0DuleMSB, BarP0DuleLSB).
		Set(layer, BarLayerMSB, BarLayerLSB).
		Set(bar, BarNumberMSB, BarNumberLSB).
		Build()
}

func isBar(id geomid.GeometryId) bool {
	return id.Matches(geomid.P0D, SeqScintillator)
}

func GetBarP0Dule(id geomid.GeometryId) int {
	if !isBar(id) {
		return -1
	}
	return id.Field(BarP0DuleMSB, BarP0DuleLSB)
}

func GetBarLayer(id geomid.GeometryId) int {
	if !isBar(id) {
		return -1
	}
	return id.Field(BarLayerMSB, BarLayerLSB)
}

func GetBarNumber(id geomid.GeometryId) int {
	if !isBar(id) {
		return -1
	}
	return id.Field(BarNumberMSB, BarNumberLSB)
}
