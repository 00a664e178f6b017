package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-notegen/pkg/catalog"
)

// coerceFunc converts non-empty raw input into a typed value, returning an
// error message when the input does not satisfy the format.
type coerceFunc func(raw string) (any, string)

// Rule validates a single field. Rules are derived 1:1 from FieldSpec entries.
type Rule struct {
	field  catalog.FieldSpec
	format catalog.Format
	coerce coerceFunc
}

func newRule(field catalog.FieldSpec) (Rule, error) {
	format := field.EffectiveFormat()
	var coerce coerceFunc
	switch format {
	case catalog.FormatString:
		coerce = coerceString
	case catalog.FormatInteger:
		coerce = coerceInteger
	case catalog.FormatShortDate:
		coerce = coerceShortDate
	default:
		return Rule{}, &UnknownFormatError{Field: field.ID, Format: field.Format}
	}
	return Rule{field: field, format: format, coerce: coerce}, nil
}

// Field returns the catalog entry the rule was derived from.
func (r Rule) Field() catalog.FieldSpec { return r.field }

// Format returns the effective format tag.
func (r Rule) Format() catalog.Format { return r.format }

// Required reports whether empty input is rejected.
func (r Rule) Required() bool { return !r.field.Optional }

// Check evaluates raw input. set is false when the field has no value at all.
func (r Rule) Check(raw string, set bool) FieldResult {
	result := FieldResult{ID: r.field.ID}

	if !set || strings.TrimSpace(raw) == "" {
		if r.Required() {
			result.Error = MsgRequired
			return result
		}
		result.Valid = true
		return result
	}

	value, msg := r.coerce(raw)
	result.Value = value
	if msg != "" {
		result.Error = msg
		return result
	}
	result.Valid = true
	return result
}

// Validator adapts the rule to the func(string) error shape used by prompt
// libraries.
func (r Rule) Validator() func(string) error {
	return func(raw string) error {
		res := r.Check(raw, true)
		if res.Valid {
			return nil
		}
		return errors.New(res.Error)
	}
}

func coerceString(raw string) (any, string) {
	return raw, ""
}

func coerceInteger(raw string) (any, string) {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if n <= 0 {
			return n, MsgNotPositive
		}
		return n, ""
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, MsgNotANumber
	}
	if f != math.Trunc(f) {
		return f, MsgNotInteger
	}
	if f <= 0 {
		return f, MsgNotPositive
	}
	if f >= math.MaxInt64 {
		return f, MsgNotInteger
	}
	// integral values written as floats, such as 42.0 or 1e2
	return int64(f), ""
}

func coerceShortDate(raw string) (any, string) {
	parsed, ok := ParseShortDate(raw)
	if !ok {
		return InvalidDate, MsgInvalidDate
	}
	return parsed, ""
}
