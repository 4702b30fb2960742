package tilemap

import "errors"

var (
	// ErrEmptyGrid indicates a grid with a non-positive width or height.
	ErrEmptyGrid = errors.New("tilemap: grid must have positive width and height")
	// ErrDimensionMismatch indicates tiles whose count does not match width×height.
	ErrDimensionMismatch = errors.New("tilemap: tile count does not match dimensions")
	// ErrOutOfBounds indicates a position outside [0, width×height) or a coordinate off the grid.
	ErrOutOfBounds = errors.New("tilemap: position out of bounds")
	// ErrUnknownGlyph indicates an unsupported character in a textual grid.
	ErrUnknownGlyph = errors.New("tilemap: unknown tile glyph")
)
