package schema

import "errors"

var (
	// ErrInvalidRecord indicates a record failed validation against its schema.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidSchema indicates a malformed column list.
	ErrInvalidSchema = errors.New("invalid schema")
)
