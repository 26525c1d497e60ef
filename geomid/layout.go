package geomid

// Most subsystems describe their "global" volumes (the whole detector, a
// module, a target, ...) with the same two fields after the sequence id: a
// kind selector and a kind specific value.
const (
	GlobalKindMSB = SeqIdLSB - 1
	GlobalKindLSB = GlobalKindMSB - 7

	GlobalFieldMSB = GlobalKindLSB - 1
	GlobalFieldLSB = 0
)

// NewGlobal starts a global volume id of the given kind
func NewGlobal(what string, detector, seq, kind int) *Builder {
	return NewBuilder(what, detector).Seq(seq).Set(kind, GlobalKindMSB, GlobalKindLSB)
}

// GlobalField returns the kind specific value of a global volume id, or -1
// if id is not a global volume of that kind.
func GlobalField(id GeometryId, detector, seq, kind int) int {
	if !id.Matches(detector, seq) {
		return -1
	}
	if id.Field(GlobalKindMSB, GlobalKindLSB) != kind {
		return -1
	}
	return id.Field(GlobalFieldMSB, GlobalFieldLSB)
}
