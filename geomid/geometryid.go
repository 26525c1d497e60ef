// Package geomid defines GeometryId, the stable 32 bit identifier given to
// detector volumes, and the layout shared by every subsystem.
//
// Layout of a geometry id:
//
//	bit  31      guard, always 0
//	bits 30..25  detector (subsystem) code
//	bits 24..21  sequence id, selects the sub layout used by the payload
//	bits 20..0   sequence specific fields
//
// The subsystem packages (cryostat, p0d, tpc, fgd, ecal, smrd, ingrid) hold
// the constructors and accessors for their own payload layouts.
package geomid

import (
	"fmt"

	"github.com/forestrie/go-geomid/bitfield"
)

// GeometryId identifies a detector volume independently of the node
// numbering of any particular load of the geometry tree.
type GeometryId int32

const (
	GuardBit = 31

	DetectorMSB = 30
	DetectorLSB = 25

	SubDetectorMSB = 24
	SubDetectorLSB = 0

	// SeqIdMSB and SeqIdLSB select the sub layout, every subsystem uses the
	// same position for it.
	SeqIdMSB = SubDetectorMSB
	SeqIdLSB = SeqIdMSB - 3
)

// Detector codes. ROOTGeoNode marks a plain tree node that has no geometry id.
const (
	ROOTGeoNode = iota
	Cryostat
	P0D
	TPC
	FGD
	DSECal
	TECal
	PECal
	SMRD
	INGRID

	detectorLimit
)

var subsystemNames = map[int]string{
	ROOTGeoNode: "node",
	Cryostat:    "cryostat",
	P0D:         "p0d",
	TPC:         "tpc",
	FGD:         "fgd",
	DSECal:      "dsecal",
	TECal:       "tecal",
	PECal:       "pecal",
	SMRD:        "smrd",
	INGRID:      "ingrid",
}

// Empty returns the id that means "no id". It is never valid.
func Empty() GeometryId { return GeometryId(0) }

// AsInt returns the packed integer value
func (id GeometryId) AsInt() int32 { return int32(id) }

// Less orders ids by their integer value
func (id GeometryId) Less(other GeometryId) bool { return id < other }

// Field decodes the closed bit range [lsb, msb] of the id
func (id GeometryId) Field(msb, lsb uint) int {
	return bitfield.Decode(uint32(id), msb, lsb)
}

// Subsystem returns the detector code of the id
func (id GeometryId) Subsystem() int {
	return id.Field(DetectorMSB, DetectorLSB)
}

// SequenceId returns the sub layout selector of the id
func (id GeometryId) SequenceId() int {
	return id.Field(SeqIdMSB, SeqIdLSB)
}

// Matches returns true if the id belongs to detector and uses the sequence
// layout seq. It is the first check made by every accessor.
func (id GeometryId) Matches(detector, seq int) bool {
	if id.Subsystem() != detector {
		return false
	}
	return id.SequenceId() == seq
}

// SubsystemName returns a short name for the detector code. Plain tree
// nodes are "node" and codes outside the known set are "unknown".
func (id GeometryId) SubsystemName() string {
	if id < 0 {
		return "unknown"
	}
	if name, ok := subsystemNames[id.Subsystem()]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the guard bit is clear, the id is not empty and the
// detector code is a known subsystem. A valid id is not guaranteed to name a
// real volume, only to have a recognised shape.
func (id GeometryId) IsValid() bool {
	if id <= 0 {
		return false
	}
	det := id.Subsystem()
	return det > ROOTGeoNode && det < detectorLimit
}

func (id GeometryId) String() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// IsKnownSubsystem returns true for the detector codes that may appear in a
// valid id.
func IsKnownSubsystem(detector int) bool {
	return detector > ROOTGeoNode && detector < detectorLimit
}
