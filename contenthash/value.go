// Package contenthash holds the 160 bit fingerprints used to recognise a
// geometry tree, and the alignment applied to it, across loads.
package contenthash

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	// Words is the number of 32 bit words in a Value
	Words = 5

	// wordChars is the width of one formatted word
	wordChars = 8

	// TextLength is the length of a fully formatted value, five words and
	// four dashes.
	TextLength = Words*wordChars + Words - 1

	wildcardWord = "xxxxxxxx"
)

// Value is a SHA-1 sized digest split into five words. A zero word is
// unknown and matches anything under Equivalent.
type Value [Words]uint32

// Valid returns true if at least one word is known
func (v Value) Valid() bool {
	for _, w := range v {
		if w != 0 {
			return true
		}
	}
	return false
}

// Word returns word i
func (v Value) Word(i int) uint32 { return v[i] }

// Equivalent compares the words known in both values. Any disagreement
// makes the values different, and at least one word must be known on both
// sides, so two invalid values are never equivalent.
func (v Value) Equivalent(other Value) bool {
	matched := false
	for i := range v {
		if v[i] == 0 || other[i] == 0 {
			continue
		}
		if v[i] != other[i] {
			return false
		}
		matched = true
	}
	return matched
}

// Less orders values word by word
func (v Value) Less(other Value) bool {
	for i := range v {
		if v[i] != other[i] {
			return v[i] < other[i]
		}
	}
	return false
}

// String formats the value with unknown words as xxxxxxxx
func (v Value) String() string {
	parts := make([]string, Words)
	for i, w := range v {
		if w == 0 {
			parts[i] = wildcardWord
			continue
		}
		parts[i] = fmt.Sprintf("%08x", w)
	}
	return strings.Join(parts, "-")
}

// hex formats every word, including the zero ones
func (v Value) hex() string {
	return fmt.Sprintf("%08x-%08x-%08x-%08x-%08x", v[0], v[1], v[2], v[3], v[4])
}

// MarshalText encodes the value in the same form as String
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts the output of String, so xxxxxxxx reads as an
// unknown word.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(strings.ReplaceAll(string(text), wildcardWord, "00000000"))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromDigest splits a 20 byte SHA-1 sum into big endian words
func FromDigest(sum []byte) (Value, error) {
	var v Value
	if len(sum) != Words*4 {
		return v, fmt.Errorf("%w: %d bytes", ErrDigestSize, len(sum))
	}
	for i := range v {
		v[i] = binary.BigEndian.Uint32(sum[i*4:])
	}
	return v, nil
}

// AlignmentID identifies a set of alignment corrections. Doc is descriptive
// only and takes no part in comparisons.
type AlignmentID struct {
	Value
	Doc string
}

// NewAlignmentID wraps v with a description
func NewAlignmentID(v Value, doc string) AlignmentID {
	return AlignmentID{Value: v, Doc: doc}
}

// Equivalent compares the hash words, ignoring Doc
func (a AlignmentID) Equivalent(other AlignmentID) bool {
	return a.Value.Equivalent(other.Value)
}

// EmptyAlignment identifies "no corrections". It is the SHA-1 of nothing,
// which makes it valid and unlike the zero AlignmentID.
func EmptyAlignment() AlignmentID {
	d := NewDigest()
	return AlignmentID{Value: d.Sum(), Doc: "no alignment"}
}
