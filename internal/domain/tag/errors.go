package tag

import "errors"

var (
	// ErrTagNotFound indicates the tag doesn't exist.
	ErrTagNotFound = errors.New("tag not found")
	// ErrInvalidName indicates an empty tag name.
	ErrInvalidName = errors.New("invalid tag name")
	// ErrDuplicateName indicates a tag with the same name already exists.
	ErrDuplicateName = errors.New("duplicate tag name")
	// ErrInvalidColor indicates a color outside the palette.
	ErrInvalidColor = errors.New("invalid tag color")
)
