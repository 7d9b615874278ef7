package schema

// ValueType is the declared type of an inventory column.
type ValueType string

const (
	TypeText   ValueType = "text"
	TypeNumber ValueType = "number"
	TypeDate   ValueType = "date"
	TypeEmail  ValueType = "email"
	TypeSelect ValueType = "select"
)

// Valid reports whether t is a known column type.
func (t ValueType) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeDate, TypeEmail, TypeSelect:
		return true
	}
	return false
}

// Column is one typed field definition of an inventory.
type Column struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Type     ValueType `json:"type" yaml:"type"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
}

// Schema is the ordered column list of an inventory.
type Schema []Column

// Column returns the column with the given id.
func (s Schema) Column(id string) (Column, bool) {
	for _, c := range s {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Clone returns a deep copy of s.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	out := make(Schema, len(s))
	for i, c := range s {
		c.Options = append([]string(nil), c.Options...)
		out[i] = c
	}
	return out
}

// Record is one row of an inventory. Ids are unique only within the owning
// inventory.
type Record struct {
	ID     string           `json:"id" yaml:"id"`
	Values map[string]Value `json:"values" yaml:"values"`
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	values := make(map[string]Value, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Record{ID: r.ID, Values: values}
}
