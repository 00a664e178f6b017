package catalog

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// ValuesSchemaName names the payload schema inside the OpenAPI components.
const ValuesSchemaName = "FormValues"

// OpenAPISchema describes the raw form payload. Every property is a string
// because values are validated after decoding; the catalog format, options
// and optionality travel as `x-` extensions.
func OpenAPISchema(fields []FieldSpec) *openapi3.Schema {
	return buildSchema(fields, true)
}

// OpenAPIDocument wraps the payload schema in a minimal OpenAPI document.
func OpenAPIDocument(fields []FieldSpec, title, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				ValuesSchemaName: openapi3.NewSchemaRef("", OpenAPISchema(fields)),
			},
		},
	}
}

// PayloadChecker rejects payloads whose members are not strings. Missing
// members are allowed; required checks belong to the validation schema.
type PayloadChecker struct {
	schema *openapi3.Schema
}

// NewPayloadChecker builds a checker for the supplied catalog.
func NewPayloadChecker(fields []FieldSpec) *PayloadChecker {
	return &PayloadChecker{schema: buildSchema(fields, false)}
}

// Check validates the decoded JSON payload against the catalog shape.
func (c *PayloadChecker) Check(payload map[string]any) error {
	if c == nil || c.schema == nil {
		return fmt.Errorf("catalog: payload checker is not configured")
	}
	if err := c.schema.VisitJSON(payload); err != nil {
		return fmt.Errorf("catalog: invalid payload: %w", err)
	}
	return nil
}

func buildSchema(fields []FieldSpec, withRequired bool) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	var required []string

	for _, field := range fields {
		prop := openapi3.NewStringSchema()
		prop.Title = field.Label
		prop.Nullable = true
		prop.Extensions = map[string]any{
			"x-format": string(field.EffectiveFormat()),
		}
		if field.Optional {
			prop.Extensions["x-optional"] = true
		}
		if len(field.Options) > 0 {
			prop.Extensions["x-options"] = append([]string(nil), field.Options...)
		}
		if field.Placeholder != "" {
			prop.Extensions["x-placeholder"] = field.Placeholder
		}
		schema.WithProperty(field.ID, prop)

		if !field.Optional {
			required = append(required, field.ID)
		}
	}

	if withRequired {
		schema.Required = required
	}
	return schema
}
