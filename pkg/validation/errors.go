package validation

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-notegen/pkg/catalog"
)

// ErrUnknownFormat matches any UnknownFormatError via errors.Is.
var ErrUnknownFormat = errors.New("validation: unknown field format")

// UnknownFormatError reports a catalog entry whose format tag has no rule.
type UnknownFormatError struct {
	Field  string
	Format catalog.Format
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("validation: field %q has unknown format %q (supported: %s, %s, %s)",
		e.Field, e.Format, catalog.FormatString, catalog.FormatInteger, catalog.FormatShortDate)
}

// Is allows errors.Is(err, ErrUnknownFormat).
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// Messages surfaced on invalid fields.
const (
	MsgRequired    = "Required"
	MsgNotANumber  = "Must be a number"
	MsgNotInteger  = "Must be a whole number"
	MsgNotPositive = "Must be a positive number"
	MsgInvalidDate = "Must be a valid date (mm/dd/yyyy)"
)
