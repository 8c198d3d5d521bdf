package jsonsafe_test

import (
	"errors"
	"idverify/pkg/jsonsafe"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code jsonsafe.Code) *jsonsafe.Error {
	t.Helper()
	var pe *jsonsafe.Error
	require.True(t, errors.As(err, &pe), "expected *jsonsafe.Error, got %T", err)
	require.Equal(t, code, pe.Code)

	return pe
}

func TestParse_empty(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
		len  int
	}{
		{name: "nil", raw: nil, len: 0},
		{name: "empty", raw: []byte{}, len: 0},
		{name: "spaces", raw: []byte("   "), len: 3},
		{name: "newlines and tabs", raw: []byte("\n\t \r\n"), len: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v any
			require.NotPanics(t, func() {
				var err error
				v, err = jsonsafe.Parse(tc.raw, nil)
				pe := requireCode(t, err, jsonsafe.CodeEmptyResponse)
				require.Equal(t, tc.len, pe.ResponseLength())
			})
			require.Nil(t, v)
		})
	}
}

func TestParse_valid(t *testing.T) {
	v, err := jsonsafe.Parse([]byte(`{"a":[1,"x",true,null],"b":{"c":1.5}}`), nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"a": []any{float64(1), "x", true, nil},
		"b": map[string]any{"c": 1.5},
	}, v)

	v, err = jsonsafe.Parse([]byte(`"just a string"`), nil)
	require.NoError(t, err)
	require.Equal(t, "just a string", v)
}

func TestParse_invalid(t *testing.T) {
	raw := []byte("<html>" + strings.Repeat("x", 200) + "</html>")
	_, err := jsonsafe.Parse(raw, map[string]any{"provider": "datapro", "attempt": 2})

	pe := requireCode(t, err, jsonsafe.CodeParseError)
	require.Equal(t, len(raw), pe.ResponseLength())
	require.NotEmpty(t, pe.Details[jsonsafe.DetailParseError])
	require.Equal(t, string(raw[:jsonsafe.PreviewLength]), pe.Details[jsonsafe.DetailResponsePreview])
	require.Equal(t, "datapro", pe.Details["provider"])
	require.Equal(t, 2, pe.Details["attempt"])
	require.Contains(t, pe.Error(), "Failed to parse JSON response")
}

func TestParse_previewCountsCharacters(t *testing.T) {
	raw := []byte(strings.Repeat("é", 150))
	_, err := jsonsafe.Parse(raw, nil)

	pe := requireCode(t, err, jsonsafe.CodeParseError)
	require.Equal(t, strings.Repeat("é", 100), pe.Details[jsonsafe.DetailResponsePreview])
}

func TestDecode_typeMismatch(t *testing.T) {
	var out struct {
		Success bool `json:"success"`
	}
	err := jsonsafe.Decode([]byte(`{"success":"yes"}`), &out, nil)
	requireCode(t, err, jsonsafe.CodeParseError)
}

func TestValid(t *testing.T) {
	require.True(t, jsonsafe.Valid([]byte(`{"ok":true}`)))
	require.True(t, jsonsafe.Valid([]byte(`[]`)))
	require.False(t, jsonsafe.Valid([]byte(`{"ok":`)))
	require.False(t, jsonsafe.Valid([]byte("  ")))
	require.False(t, jsonsafe.Valid(nil))
}
