package geomid

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/bitfield"
)

// Builder accumulates the fields of an id in a fixed order: detector code,
// sequence id, then the sequence specific fields. The first failure sticks
// and every later Set is ignored.
type Builder struct {
	what string
	word uint32
	err  error
}

// NewBuilder starts an id for detector. what names the constructor in
// diagnostics.
func NewBuilder(what string, detector int) *Builder {
	b := &Builder{what: what}
	return b.Set(detector, DetectorMSB, DetectorLSB)
}

// Set encodes value into [lsb, msb]
func (b *Builder) Set(value int, msb, lsb uint) *Builder {
	if b.err != nil {
		return b
	}
	b.word, b.err = bitfield.Encode(b.word, value, msb, lsb)
	return b
}

// Seq encodes the sequence id
func (b *Builder) Seq(seq int) *Builder {
	return b.Set(seq, SeqIdMSB, SeqIdLSB)
}

// Require records an argument error unless ok is true
func (b *Builder) Require(ok bool, format string, args ...any) *Builder {
	if b.err != nil || ok {
		return b
	}
	b.err = fmt.Errorf("%w: %s", ErrArgument, fmt.Sprintf(format, args...))
	return b
}

// Result returns the id, or Empty() and the first error encountered
func (b *Builder) Result() (GeometryId, error) {
	if b.err != nil {
		return Empty(), fmt.Errorf("%s: %w", b.what, b.err)
	}
	return GeometryId(b.word), nil
}

// Build returns the id. On failure it logs a warning and returns Empty(),
// which the mapping engine will refuse to register. Nothing is logged
// until logger.New has been called.
func (b *Builder) Build() GeometryId {
	id, err := b.Result()
	if err != nil {
		if logger.Sugar != nil {
			logger.Sugar.Warnf("%v", err)
		}
		return Empty()
	}
	return id
}
