package narrative

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldMismatch matches any FieldMismatchError via errors.Is.
var ErrFieldMismatch = errors.New("narrative: template and field catalog disagree")

// FieldMismatchError lists field ids the template never reads and template
// variables that no field supplies.
type FieldMismatchError struct {
	Unreferenced []string
	Unknown      []string
}

func (e *FieldMismatchError) Error() string {
	var parts []string
	if len(e.Unreferenced) > 0 {
		parts = append(parts, "fields not used by template: "+strings.Join(e.Unreferenced, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "template variables without field: "+strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("narrative: template and field catalog disagree: %s", strings.Join(parts, "; "))
}

// Is allows errors.Is(err, ErrFieldMismatch).
func (e *FieldMismatchError) Is(target error) bool {
	return target == ErrFieldMismatch
}

// CheckFields asserts that every id is referenced by the template and every
// template variable is one of ids.
func CheckFields(tpl *Template, ids []string) error {
	if tpl == nil {
		return fmt.Errorf("narrative: template is nil")
	}

	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	used := make(map[string]struct{}, len(tpl.variables))
	for _, name := range tpl.variables {
		used[name] = struct{}{}
	}

	mismatch := &FieldMismatchError{}
	for _, id := range ids {
		if _, ok := used[id]; !ok {
			mismatch.Unreferenced = append(mismatch.Unreferenced, id)
		}
	}
	for _, name := range tpl.variables {
		if _, ok := known[name]; !ok {
			mismatch.Unknown = append(mismatch.Unknown, name)
		}
	}

	if len(mismatch.Unreferenced) == 0 && len(mismatch.Unknown) == 0 {
		return nil
	}
	return mismatch
}
