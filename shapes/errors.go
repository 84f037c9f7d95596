package shapes

import "errors"

var (
	ErrInvalidWidth  = errors.New("invalid width")
	ErrInvalidHeight = errors.New("invalid height")
	ErrInvalidRadius = errors.New("invalid radius")
	ErrInvalidFactor = errors.New("invalid scale factor")
)
