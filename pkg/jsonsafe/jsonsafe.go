// Package jsonsafe parses provider response bodies without ever panicking.
// Failures come back as *Error values carrying a stable code and diagnostic
// details (body length, decoder message and a short preview).
package jsonsafe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/go-faster/jx"
)

// Code classifies a parse failure.
type Code string

const (
	// CodeEmptyResponse is reported for nil, empty or whitespace-only bodies.
	CodeEmptyResponse Code = "EMPTY_RESPONSE"
	// CodeParseError is reported for bodies that are not valid JSON.
	CodeParseError Code = "PARSE_ERROR"
)

// PreviewLength is the number of characters of the body kept for diagnostics.
const PreviewLength = 100

// Details keys.
const (
	DetailResponseLength  = "responseLength"
	DetailParseError      = "parseError"
	DetailResponsePreview = "responsePreview"
)

// Error is a structured parse failure.
type Error struct {
	Code    Code
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if p, ok := e.Details[DetailParseError]; ok {
		return fmt.Sprintf("%s: %v", e.Message, p)
	}

	return e.Message
}

// ResponseLength returns the recorded body length.
func (e *Error) ResponseLength() int {
	n, _ := e.Details[DetailResponseLength].(int)

	return n
}

// Parse decodes raw into a generic value (maps, slices, strings, float64,
// bool or nil). Caller supplied context is merged into the error details.
func Parse(raw []byte, context map[string]any) (any, error) {
	var v any
	if err := Decode(raw, &v, context); err != nil {
		return nil, err
	}

	return v, nil
}

// Decode unmarshals raw into v. It reports the same errors as Parse, plus a
// PARSE_ERROR when the JSON does not fit v.
func Decode(raw []byte, v any, context map[string]any) error {
	if raw == nil {
		return newError(CodeEmptyResponse, "Response body is null or undefined", map[string]any{
			DetailResponseLength: 0,
		}, context)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return newError(CodeEmptyResponse, "Response body is empty or whitespace-only", map[string]any{
			DetailResponseLength: len(raw),
		}, context)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return newError(CodeParseError, "Failed to parse JSON response", map[string]any{
			DetailParseError:      err.Error(),
			DetailResponseLength:  len(raw),
			DetailResponsePreview: preview(raw),
		}, context)
	}

	return nil
}

// Valid reports whether raw is a non-blank JSON document.
func Valid(raw []byte) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}

	return jx.Valid(raw)
}

func newError(code Code, msg string, details, context map[string]any) *Error {
	maps.Copy(details, context)

	return &Error{Code: code, Message: msg, Details: details}
}

func preview(raw []byte) string {
	s := strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	if utf8.RuneCountInString(s) <= PreviewLength {
		return s
	}

	return string([]rune(s)[:PreviewLength])
}
