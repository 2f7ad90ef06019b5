package docscheck

import "fmt"

// ValidationIssue is a single leaf failure from validating an instance
// against a schema.
type ValidationIssue struct {
	// InstancePath is the JSON pointer to the failing value, "" for the
	// document root.
	InstancePath string

	// KeywordPath is the JSON pointer to the violated schema keyword.
	KeywordPath string

	// Message describes the failure.
	Message string
}

// String renders the issue for per-occurrence reporting.
func (i ValidationIssue) String() string {
	path := i.InstancePath
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s: %s", path, i.Message)
}

// SchemaValidator validates instances against one compiled schema.
type SchemaValidator interface {
	// Validate returns one issue per violated schema rule. An empty
	// result means the instance is valid. The error return reports
	// validator failures unrelated to the instance's content.
	Validate(instance any) ([]ValidationIssue, error)
}

// ValidatorFactory compiles schema documents into validators.
type ValidatorFactory interface {
	// Build compiles schema, selecting the dialect from the schema's
	// declared $schema. A malformed schema fails here rather than at
	// validation time. When enforceDefaults is set, instance values
	// must equal any schema-declared defaults.
	Build(schema any, enforceDefaults bool) (SchemaValidator, error)
}
