// Package bitfield packs small non-negative integers into closed bit ranges
// of a 32 bit word.
//
// Bits are numbered from 0 (least significant) to 31 (most significant) and a
// range [lsb, msb] is inclusive at both ends, so its width is msb-lsb+1.
package bitfield

import (
	"fmt"
	"math/bits"
)

const (
	// WordBits is the number of bits available in a word
	WordBits = 32
	// MaxMSB is the highest bit index that a range may reach
	MaxMSB = WordBits - 1
)

// RangeError is returned by Encode when a value does not fit the range it is
// being written to.
type RangeError struct {
	Value int
	MSB   uint
	LSB   uint
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d does not fit bits [%d:%d] (max %d)",
		ErrRange, e.Value, e.MSB, e.LSB, MaxValue(e.MSB, e.LSB))
}

func (e *RangeError) Unwrap() error { return ErrRange }

// Width returns the number of bits in the range [lsb, msb]
func Width(msb, lsb uint) uint {
	return msb - lsb + 1
}

// Mask returns a word with every bit in [lsb, msb] set
func Mask(msb, lsb uint) uint32 {
	w := Width(msb, lsb)
	if w >= WordBits {
		return ^uint32(0)
	}
	return ((uint32(1) << w) - 1) << lsb
}

// MaxValue returns the largest value that can be encoded in [lsb, msb]
func MaxValue(msb, lsb uint) int {
	return int(Mask(msb, lsb) >> lsb)
}

// CheckRange returns ErrBadBitRange if [lsb, msb] is not a usable range
func CheckRange(msb, lsb uint) error {
	if msb < lsb || msb > MaxMSB {
		return fmt.Errorf("%w: [%d:%d]", ErrBadBitRange, msb, lsb)
	}
	return nil
}

// Encode writes value into the range [lsb, msb] of word and returns the
// updated word. The bits in the range are cleared first so a field can be
// overwritten. If the value is negative or too wide for the range, the word
// is returned unchanged along with a *RangeError.
func Encode(word uint32, value int, msb, lsb uint) (uint32, error) {
	if err := CheckRange(msb, lsb); err != nil {
		return word, err
	}
	if value < 0 || value > MaxValue(msb, lsb) {
		return word, &RangeError{Value: value, MSB: msb, LSB: lsb}
	}
	mask := Mask(msb, lsb)
	word &^= mask
	word |= (uint32(value) << lsb) & mask
	return word, nil
}

// Decode returns the value stored in the range [lsb, msb] of word. Decode
// does not validate the range, callers use the constants from a layout table.
func Decode(word uint32, msb, lsb uint) int {
	return int((word & Mask(msb, lsb)) >> lsb)
}

// BitsFor returns the number of bits needed to hold every value in [0, max]
func BitsFor(max int) uint {
	if max <= 0 {
		return 1
	}
	return uint(bits.Len32(uint32(max)))
}
