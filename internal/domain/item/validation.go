package item

import (
	"fmt"
	"strings"

	"github.com/rpggio/stowage/internal/apperr"
)

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperr.Validation("name", "Name is required").Wrap(ErrInvalidName)
	}
	return trimmed, nil
}

// ValidateCreateInput checks the kind-independent and kind-specific fields of
// req that can be checked without touching the store.
func ValidateCreateInput(req CreateRequest) (string, error) {
	if !req.Kind.Valid() {
		return "", apperr.Validation("kind", fmt.Sprintf("unknown kind %q", req.Kind)).Wrap(ErrInvalidInput)
	}
	name, err := validateName(req.Name)
	if err != nil {
		return "", err
	}
	switch req.Kind {
	case KindDocument:
		if !req.DocumentType.Valid() {
			return "", apperr.Validation("document_type", fmt.Sprintf("unknown document type %q", req.DocumentType)).Wrap(ErrInvalidInput)
		}
		if req.Size < 0 {
			return "", apperr.Validation("size", "Size must not be negative").Wrap(ErrInvalidInput)
		}
	case KindFolder, KindInventory:
		if req.Size != 0 {
			return "", apperr.Validation("size", fmt.Sprintf("%s items have no size", req.Kind)).Wrap(ErrInvalidInput)
		}
	}
	return name, nil
}

func unsupportedFileType() error {
	return apperr.Validation("file_name",
		"Invalid file type. Allowed: "+strings.Join(AllowedExtensions, ", ")).Wrap(ErrUnsupportedFileType)
}

func parentNotFolder(field string) error {
	return apperr.Validation(field, "Target must be a folder").Wrap(ErrParentNotFolder)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
