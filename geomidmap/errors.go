package geomidmap

import "errors"

var (
	ErrNoGeometry      = errors.New("no geometry is available")
	ErrInvalidHash     = errors.New("the geometry hash could not be established")
	ErrBadAlignment    = errors.New("the alignment corrections do not match the alignment id")
	ErrNoSource        = errors.New("no geometry source was provided")
	ErrTopVolumeAbsent = errors.New("the top volume is missing from the geometry")
)
