package contenthash

import (
	"crypto/sha1"
	"encoding/binary"
	"hash"
	"math"
)

// Digest accumulates the content of a geometry walk
type Digest struct {
	h hash.Hash
}

func NewDigest() *Digest {
	return &Digest{h: sha1.New()}
}

// WritePath adds a node path
func (d *Digest) WritePath(path string) {
	_, _ = d.h.Write([]byte(path))
}

// WriteFloat64 adds the IEEE-754 bits of f as 8 little endian bytes. The
// digest is therefore only as portable as the float values fed to it.
func (d *Digest) WriteFloat64(f float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	_, _ = d.h.Write(b[:])
}

// WriteVector adds each component in order
func (d *Digest) WriteVector(v [3]float64) {
	for _, f := range v {
		d.WriteFloat64(f)
	}
}

// Sum finalises the digest. The Digest may keep being written to.
func (d *Digest) Sum() Value {
	// a sha1 sum is always 20 bytes
	v, _ := FromDigest(d.h.Sum(nil))
	return v
}
