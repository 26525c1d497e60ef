package geomstore

import "errors"

var (
	ErrNoMatchingGeometry     = errors.New("no stored geometry matches the pattern")
	ErrNotSnapshot            = errors.New("the data is not a geometry snapshot")
	ErrNoKey                  = errors.New("the snapshot has no geometry with the requested name")
	ErrGeometryDirUnavailable = errors.New("the geometry directory is not available")
)
