package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/rpggio/stowage/internal/apperr"
	"github.com/rpggio/stowage/internal/domain/schema"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func programSchema() schema.Schema {
	return schema.Schema{
		{ID: "col-1", Name: "Program Name", Type: schema.TypeText, Required: true},
		{ID: "col-2", Name: "Contact", Type: schema.TypeEmail},
		{ID: "col-3", Name: "Capacity", Type: schema.TypeNumber},
	}
}

func TestValidateRecord_RequiredColumn(t *testing.T) {
	s := programSchema()

	for name, values := range map[string]map[string]schema.Value{
		"absent": {},
		"null":   {"col-1": schema.Null()},
		"empty":  {"col-1": schema.String("")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := schema.ValidateRecord(s, values, schema.Options{})
			require.ErrorIs(t, err, apperr.ErrValidation)
			require.ErrorIs(t, err, schema.ErrInvalidRecord)
			require.Equal(t, map[string]string{"col-1": "Program Name is required"}, apperr.FieldErrors(err))
		})
	}

	out, err := schema.ValidateRecord(s, map[string]schema.Value{"col-1": schema.String("Opening Ceremony")}, schema.Options{})
	require.NoError(t, err)
	require.Equal(t, "Opening Ceremony", out["col-1"].Text())
}

func TestValidateRecord_EmailFormat(t *testing.T) {
	s := programSchema()
	base := map[string]schema.Value{"col-1": schema.String("x")}

	with := func(v schema.Value) map[string]schema.Value {
		m := map[string]schema.Value{}
		for k, val := range base {
			m[k] = val
		}
		m["col-2"] = v
		return m
	}

	_, err := schema.ValidateRecord(s, with(schema.String("not-an-email")), schema.Options{})
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.Equal(t, "Invalid email address", apperr.FieldErrors(err)["col-2"])

	for _, bad := range []string{"a b@c.com", "a@b", "@b.com", "a@b.", "a@@b.com"} {
		_, err := schema.ValidateRecord(s, with(schema.String(bad)), schema.Options{})
		require.Error(t, err, bad)
	}

	_, err = schema.ValidateRecord(s, with(schema.String("a@b.com")), schema.Options{})
	require.NoError(t, err)

	_, err = schema.ValidateRecord(s, with(schema.String("")), schema.Options{})
	require.NoError(t, err)
}

func TestValidateRecord_RequiredEmailReportsEmailMessage(t *testing.T) {
	s := schema.Schema{{ID: "e", Name: "Contact Email", Type: schema.TypeEmail, Required: true}}

	_, err := schema.ValidateRecord(s, nil, schema.Options{})
	require.Equal(t, "Contact Email is required", apperr.FieldErrors(err)["e"])

	_, err = schema.ValidateRecord(s, map[string]schema.Value{"e": schema.String("nope")}, schema.Options{})
	require.Equal(t, "Invalid email address", apperr.FieldErrors(err)["e"])
}

func TestValidateRecord_Normalizes(t *testing.T) {
	s := programSchema()
	out, err := schema.ValidateRecord(s, map[string]schema.Value{
		"col-1":   schema.String("Demo"),
		"unknown": schema.String("dropped"),
	}, schema.Options{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, schema.KindNull, out["col-2"].Kind())
	require.Equal(t, schema.KindNull, out["col-3"].Kind())
	require.NotContains(t, out, "unknown")
}

func TestValidateRecord_LenientByDefault(t *testing.T) {
	s := schema.Schema{
		{ID: "n", Name: "Capacity", Type: schema.TypeNumber},
		{ID: "d", Name: "Date", Type: schema.TypeDate},
		{ID: "s", Name: "Category", Type: schema.TypeSelect, Options: []string{"Demo"}},
	}
	values := map[string]schema.Value{
		"n": schema.String("lots"),
		"d": schema.String("tomorrow"),
		"s": schema.String("Party"),
	}

	_, err := schema.ValidateRecord(s, values, schema.Options{})
	require.NoError(t, err)

	_, err = schema.ValidateRecord(s, values, schema.Options{StrictTypes: true})
	fields := apperr.FieldErrors(err)
	require.Equal(t, "Capacity must be a number", fields["n"])
	require.Equal(t, "Date must be a date (YYYY-MM-DD)", fields["d"])
	require.Equal(t, "Category must be one of: Demo", fields["s"])

	out, err := schema.ValidateRecord(s, map[string]schema.Value{
		"n": schema.String("42"),
		"d": schema.String("2024-02-15"),
		"s": schema.String("Demo"),
	}, schema.Options{StrictTypes: true})
	require.NoError(t, err)
	require.Equal(t, schema.KindNumber, out["n"].Kind())
}

func TestNormalizeSchema(t *testing.T) {
	s, err := schema.NormalizeSchema([]schema.Column{
		{Name: "  Company  ", Required: true},
		{Name: "   "},
		{ID: "cat", Name: "Category", Type: schema.TypeSelect, Options: []string{"Boats", " ", "Engines"}},
		{Name: "Email", Type: schema.TypeEmail, Options: []string{"ignored"}},
	})
	require.NoError(t, err)
	require.Len(t, s, 3)
	require.Equal(t, "Company", s[0].Name)
	require.Equal(t, schema.TypeText, s[0].Type)
	require.NotEmpty(t, s[0].ID)
	require.Equal(t, []string{"Boats", "Engines"}, s[1].Options)
	require.Nil(t, s[2].Options)
}

func TestNormalizeSchema_Rejects(t *testing.T) {
	cases := map[string][]schema.Column{
		"no columns":     {{Name: " "}},
		"unknown type":   {{Name: "A", Type: "color"}},
		"duplicate id":   {{ID: "a", Name: "A"}, {ID: "a", Name: "B"}},
		"select no opts": {{Name: "A", Type: schema.TypeSelect}},
	}
	for name, cols := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := schema.NormalizeSchema(cols)
			require.ErrorIs(t, err, schema.ErrInvalidSchema)
			require.Contains(t, apperr.FieldErrors(err), "columns")
		})
	}
}

func TestValue_JSONAndYAML(t *testing.T) {
	var rec schema.Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":"e1","values":{"a":"x","b":500,"c":null}}`), &rec))
	require.Equal(t, schema.KindString, rec.Values["a"].Kind())
	require.Equal(t, schema.KindNumber, rec.Values["b"].Kind())
	require.Equal(t, "500", rec.Values["b"].Text())
	require.Equal(t, schema.KindNull, rec.Values["c"].Kind())

	require.Error(t, json.Unmarshal([]byte(`{"a":true}`), &map[string]schema.Value{}))

	var fromYAML map[string]schema.Value
	require.NoError(t, yaml.Unmarshal([]byte("a: '2024-02-15'\nb: 30\nc: ~\n"), &fromYAML))
	require.Equal(t, schema.KindString, fromYAML["a"].Kind())
	require.Equal(t, schema.KindNumber, fromYAML["b"].Kind())
	require.Equal(t, schema.KindNull, fromYAML["c"].Kind())
}
