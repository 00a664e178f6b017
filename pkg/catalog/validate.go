package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrEmptyCatalog is returned when a catalog holds no fields.
var ErrEmptyCatalog = errors.New("catalog: no fields defined")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

func fieldValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("field_id", validateFieldID)
		structValidator = v
	})
	return structValidator
}

func validateFieldID(fl validator.FieldLevel) bool {
	return identifierPattern.MatchString(fl.Field().String())
}

// Validate checks the structural shape of a catalog: every field carries an
// identifier-shaped id and a label, select fields list their options, and ids
// are pairwise distinct. Format tags are left to the schema builder.
func Validate(fields []FieldSpec) error {
	if len(fields) == 0 {
		return ErrEmptyCatalog
	}

	v := fieldValidator()
	seen := make(map[string]int, len(fields))
	var problems []string

	for idx, field := range fields {
		if err := v.Struct(field); err != nil {
			problems = append(problems, describeStructErrors(idx, field, err)...)
		}
		if field.ID == "" {
			continue
		}
		if first, exists := seen[field.ID]; exists {
			problems = append(problems, fmt.Sprintf("field %d: duplicate id %q (first defined at field %d)", idx, field.ID, first))
			continue
		}
		seen[field.ID] = idx
	}

	if len(problems) > 0 {
		return fmt.Errorf("catalog: invalid field catalog: %s", strings.Join(problems, "; "))
	}
	return nil
}

func describeStructErrors(idx int, field FieldSpec, err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("field %d: %v", idx, err)}
	}

	name := field.ID
	if name == "" {
		name = fmt.Sprintf("#%d", idx)
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("field %s: %s is required", name, strings.ToLower(fe.Field())))
		case "required_if":
			out = append(out, fmt.Sprintf("field %s: select fields require options", name))
		case "field_id":
			out = append(out, fmt.Sprintf("field %s: id must be a letter or underscore followed by letters, digits or underscores", name))
		case "oneof":
			out = append(out, fmt.Sprintf("field %s: unknown input type %q", name, fe.Value()))
		default:
			out = append(out, fmt.Sprintf("field %s: %s failed %q", name, strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return out
}
