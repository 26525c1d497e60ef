package bitfield

import "errors"

var (
	ErrRange       = errors.New("value out of range for bit field")
	ErrBadBitRange = errors.New("invalid bit range, msb must be >= lsb and <= 31")
)
