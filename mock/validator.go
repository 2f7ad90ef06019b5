package mock

import "github.com/robertchinezon/docscheck"

var _ docscheck.SchemaValidator = (*SchemaValidator)(nil)

// SchemaValidator is a mock implementation of docscheck.SchemaValidator.
type SchemaValidator struct {
	ValidateFn func(instance any) ([]docscheck.ValidationIssue, error)
}

func (v *SchemaValidator) Validate(instance any) ([]docscheck.ValidationIssue, error) {
	return v.ValidateFn(instance)
}

var _ docscheck.ValidatorFactory = (*ValidatorFactory)(nil)

// ValidatorFactory is a mock implementation of docscheck.ValidatorFactory.
type ValidatorFactory struct {
	BuildFn func(schema any, enforceDefaults bool) (docscheck.SchemaValidator, error)
}

func (f *ValidatorFactory) Build(schema any, enforceDefaults bool) (docscheck.SchemaValidator, error) {
	return f.BuildFn(schema, enforceDefaults)
}
