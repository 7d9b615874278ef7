package tag

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/rpggio/stowage/internal/apperr"
)

// FoldName returns the case-folded form used for duplicate detection.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// ValidateCreateInput checks name and color and returns the trimmed name.
func ValidateCreateInput(req CreateRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", apperr.Validation("name", "Tag name is required").Wrap(ErrInvalidName)
	}
	if req.Color != "" && !req.Color.Valid() {
		return "", apperr.Validation("color", fmt.Sprintf("unknown color %q", req.Color)).Wrap(ErrInvalidColor)
	}
	return name, nil
}
