package geomid

import "errors"

var (
	ErrArgument = errors.New("geometry id argument out of range")
)
