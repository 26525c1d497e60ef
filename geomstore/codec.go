package geomstore

import (
	"fmt"

	"github.com/forestrie/go-geomid/geomtree"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// Snapshots are stored as core deterministic CBOR compressed with zstd.
// The same snapshot always encodes to the same bytes.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode

	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("geomstore: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("geomstore: CBOR decoder initialization failed: " + err.Error())
	}

	// EncodeAll and DecodeAll are safe for concurrent use
	compressor, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("geomstore: zstd encoder initialization failed: " + err.Error())
	}
	decompressor, err = zstd.NewReader(nil)
	if err != nil {
		panic("geomstore: zstd decoder initialization failed: " + err.Error())
	}
}

// Encode serialises a snapshot
func Encode(snap *geomtree.Snapshot) ([]byte, error) {
	data, err := encMode.Marshal(snap)
	if err != nil {
		return nil, err
	}
	return compressor.EncodeAll(data, nil), nil
}

// Decode reads a snapshot produced by Encode. A snapshot must hold at
// least one tree.
func Decode(data []byte) (*geomtree.Snapshot, error) {
	raw, err := decompressor.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSnapshot, err)
	}
	snap := &geomtree.Snapshot{}
	if err := decMode.Unmarshal(raw, snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSnapshot, err)
	}
	if len(snap.Trees) == 0 {
		return nil, fmt.Errorf("%w: no trees", ErrNotSnapshot)
	}
	return snap, nil
}

// Key returns the named tree of a snapshot
func Key(snap *geomtree.Snapshot, name string) (geomtree.TreeSpec, error) {
	spec, ok := snap.Tree(name)
	if !ok {
		return geomtree.TreeSpec{}, fmt.Errorf("%w: %s, have %v", ErrNoKey, name, snap.Names())
	}
	return spec, nil
}
