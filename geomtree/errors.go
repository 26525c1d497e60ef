package geomtree

import "errors"

var (
	ErrBadSpec    = errors.New("the tree spec is malformed")
	ErrLocked     = errors.New("the tree is locked")
	ErrNoSuchPath = errors.New("no node has the path")
)
