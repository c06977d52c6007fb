package table

import "errors"

var (
	// ErrMissingColumn is returned when a table lacks a column it cannot be read without.
	ErrMissingColumn = errors.New("missing required column")
	// ErrDuplicateID is returned when two rows share an ID.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrRowWidth is returned when a row does not have one value per column.
	ErrRowWidth = errors.New("row width does not match columns")
)
