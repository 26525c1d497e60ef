package finder

import "errors"

var (
	ErrBadNodeName = errors.New("node name does not follow the naming convention")
)
