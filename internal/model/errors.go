package model

import "errors"

var (
	ErrMissingAttribute = errors.New("piece kind and color are required")
	ErrOutOfBounds      = errors.New("move outside board boundaries")
	ErrEmptySource      = errors.New("no piece at start coordinate")
	ErrUnboundBoard     = errors.New("no board bound to analyzer")
	ErrNilGrid          = errors.New("nil board grid")
)
