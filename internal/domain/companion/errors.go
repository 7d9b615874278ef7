package companion

import "errors"

var (
	ErrSkillNotFound     = errors.New("skill not found")
	ErrCompanionNotFound = errors.New("companion not found")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidSkillType  = errors.New("invalid skill type")
	// ErrWrongSkillType indicates a config change that doesn't apply to the
	// skill's type.
	ErrWrongSkillType = errors.New("operation does not apply to skill type")
	ErrNotInventory   = errors.New("item is not an inventory")
)
