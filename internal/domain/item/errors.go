package item

import "errors"

var (
	// ErrItemNotFound indicates the item doesn't exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrInventoryNotFound indicates the id doesn't name an inventory.
	ErrInventoryNotFound = errors.New("inventory not found")
	// ErrEntryNotFound indicates the entry doesn't exist in the inventory.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidName indicates an empty item name.
	ErrInvalidName = errors.New("invalid item name")
	// ErrInvalidInput indicates malformed kind-specific fields.
	ErrInvalidInput = errors.New("invalid item input")
	// ErrParentNotFolder indicates a parent that is not a folder.
	ErrParentNotFolder = errors.New("parent is not a folder")
	// ErrCycle indicates a move that would make an item its own ancestor.
	ErrCycle = errors.New("move would create a cycle")
	// ErrUnsupportedFileType indicates an upload with an unknown extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrDuplicateID indicates a caller-supplied id that is already taken.
	ErrDuplicateID = errors.New("duplicate item id")
)
