package schema

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rpggio/stowage/internal/apperr"
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Options tunes record validation.
type Options struct {
	// StrictTypes additionally enforces number, date and select membership.
	StrictTypes bool
}

// ValidateRecord checks candidate against s and returns the normalized values:
// one entry per column (absent columns become null), unknown keys dropped.
// Failures are returned as *apperr.ValidationError keyed by column id.
func ValidateRecord(s Schema, candidate map[string]Value, opts Options) (map[string]Value, error) {
	errs := make(map[string]string)
	out := make(map[string]Value, len(s))

	for _, col := range s {
		v := candidate[col.ID]
		if col.Required && v.IsEmpty() {
			errs[col.ID] = fmt.Sprintf("%s is required", col.Name)
		}
		if col.Type == TypeEmail && !v.IsEmpty() && !emailPattern.MatchString(v.Text()) {
			errs[col.ID] = "Invalid email address"
		}
		if opts.StrictTypes && !v.IsEmpty() {
			coerced, msg := checkType(col, v)
			if msg != "" {
				errs[col.ID] = msg
			}
			v = coerced
		}
		out[col.ID] = v
	}

	if len(errs) > 0 {
		return nil, apperr.ValidationFields(errs).Wrap(ErrInvalidRecord)
	}
	return out, nil
}

func checkType(col Column, v Value) (Value, string) {
	switch col.Type {
	case TypeNumber:
		f, ok := v.Float()
		if !ok {
			return v, fmt.Sprintf("%s must be a number", col.Name)
		}
		return Number(f), ""
	case TypeDate:
		if _, err := time.Parse(dateLayout, v.Text()); err != nil {
			return v, fmt.Sprintf("%s must be a date (YYYY-MM-DD)", col.Name)
		}
	case TypeSelect:
		if !slices.Contains(col.Options, v.Text()) {
			return v, fmt.Sprintf("%s must be one of: %s", col.Name, strings.Join(col.Options, ", "))
		}
	}
	return v, ""
}

// NormalizeSchema prepares a column list for a new inventory: blank-named
// columns are dropped, missing ids are generated and options are kept only
// for select columns.
func NormalizeSchema(columns []Column) (Schema, error) {
	out := make(Schema, 0, len(columns))
	seen := make(map[string]struct{}, len(columns))

	for _, col := range columns {
		col.Name = strings.TrimSpace(col.Name)
		if col.Name == "" {
			continue
		}
		if col.Type == "" {
			col.Type = TypeText
		}
		if !col.Type.Valid() {
			return nil, apperr.Validation("columns", fmt.Sprintf("column %q has unknown type %q", col.Name, col.Type)).Wrap(ErrInvalidSchema)
		}
		col.ID = strings.TrimSpace(col.ID)
		if col.ID == "" {
			col.ID = uuid.NewString()
		}
		if _, dup := seen[col.ID]; dup {
			return nil, apperr.Validation("columns", fmt.Sprintf("duplicate column id %q", col.ID)).Wrap(ErrInvalidSchema)
		}
		seen[col.ID] = struct{}{}

		if col.Type == TypeSelect {
			opts := make([]string, 0, len(col.Options))
			for _, o := range col.Options {
				if o = strings.TrimSpace(o); o != "" {
					opts = append(opts, o)
				}
			}
			if len(opts) == 0 {
				return nil, apperr.Validation("columns", fmt.Sprintf("select column %q needs at least one option", col.Name)).Wrap(ErrInvalidSchema)
			}
			col.Options = opts
		} else {
			col.Options = nil
		}
		out = append(out, col)
	}

	if len(out) == 0 {
		return nil, apperr.Validation("columns", "At least one column is required").Wrap(ErrInvalidSchema)
	}
	return out, nil
}
