package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/companion"
	"github.com/rpggio/stowage/internal/domain/item"
	"github.com/rpggio/stowage/internal/domain/tag"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) CodeValue() string {
	return e.Code
}

func (e *APIError) MessageValue() string {
	return e.Message
}

func (e *APIError) DetailsValue() any {
	return e.Details
}

func (e *APIError) RecoveryHintValue() string {
	return e.RecoveryHint
}

// MapError maps domain errors to MCP error codes. Errors that are neither
// validation failures nor stale ids map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, apperr.ErrValidation) {
		details := apperr.FieldErrors(err)
		switch {
		case errors.Is(err, item.ErrCycle):
			return &APIError{Code: "MOVE_CYCLE", Message: err.Error(), Details: details, RecoveryHint: "Pick a folder outside the item's own subtree"}
		case errors.Is(err, item.ErrParentNotFolder):
			return &APIError{Code: "PARENT_NOT_FOLDER", Message: err.Error(), Details: details, RecoveryHint: "Use a folder id as the parent"}
		case errors.Is(err, item.ErrUnsupportedFileType):
			return &APIError{Code: "UNSUPPORTED_FILE_TYPE", Message: err.Error(), Details: details, RecoveryHint: "Upload a .csv, .xlsx, .pdf or .md file"}
		case errors.Is(err, tag.ErrDuplicateName):
			return &APIError{Code: "DUPLICATE_TAG", Message: err.Error(), Details: details, RecoveryHint: "Reuse the existing tag from list_tags"}
		default:
			return &APIError{Code: "VALIDATION_FAILED", Message: err.Error(), Details: details, RecoveryHint: "Fix the listed fields and retry"}
		}
	}

	if errors.Is(err, apperr.ErrNotFound) {
		switch {
		case errors.Is(err, item.ErrInventoryNotFound):
			return &APIError{Code: "INVENTORY_NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the id names an inventory"}
		case errors.Is(err, item.ErrEntryNotFound):
			return &APIError{Code: "ENTRY_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_entries for current entry ids"}
		case errors.Is(err, item.ErrItemNotFound):
			return &APIError{Code: "ITEM_NOT_FOUND", Message: err.Error(), RecoveryHint: "The item may have been deleted; list the folder again"}
		case errors.Is(err, tag.ErrTagNotFound):
			return &APIError{Code: "TAG_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_tags for valid ids"}
		case errors.Is(err, companion.ErrSkillNotFound):
			return &APIError{Code: "SKILL_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_skills for valid ids"}
		case errors.Is(err, companion.ErrCompanionNotFound):
			return &APIError{Code: "COMPANION_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_companions for valid ids"}
		default:
			return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Check ID spelling"}
		}
	}
	return nil
}

func invalidParams(err error) *APIError {
	return &APIError{Code: "INVALID_PARAMS", Message: err.Error(), RecoveryHint: "Check the tool's input schema"}
}
