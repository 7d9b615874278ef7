package activity

import "errors"

// ErrInvalidInput indicates a nil or malformed entry.
var ErrInvalidInput = errors.New("invalid activity input")
