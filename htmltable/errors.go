package htmltable

import "errors"

var (
	// ErrTableIndex is returned when the requested table does not exist.
	ErrTableIndex = errors.New("table index out of range")

	// ErrInvalidSelector is returned for row or column tags that are not
	// valid selectors.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrNoElement is returned by TagToDict and TagText when the fragment
	// has no element inside <body>.
	ErrNoElement = errors.New("no element in fragment body")
)
