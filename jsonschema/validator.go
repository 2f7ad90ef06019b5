// Package jsonschema builds schema validators on
// github.com/santhosh-tekuri/jsonschema/v5.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/robertchinezon/docscheck"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaURL is the resource name the schema document is compiled under.
const schemaURL = "schema.json"

// Ensure Factory implements docscheck.ValidatorFactory at compile time.
var _ docscheck.ValidatorFactory = (*Factory)(nil)

// Factory compiles schema documents into validators. The schema dialect is
// selected from the document's $schema declaration; documents without one
// use the latest supported draft.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Build compiles schema. A malformed schema fails here rather than at
// validation time.
func (f *Factory) Build(schema any, enforceDefaults bool) (docscheck.SchemaValidator, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if enforceDefaults {
		compiler.RegisterExtension(defaultsExtension, defaultsMeta, defaultsCompiler{})
	}
	if err := compiler.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
		return nil, docscheck.Errorf(docscheck.EINVALID, "malformed schema: %s", err)
	}

	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, docscheck.Errorf(docscheck.EINVALID, "malformed schema: %s", err)
	}
	return &Validator{schema: compiled}, nil
}

// Ensure Validator implements docscheck.SchemaValidator at compile time.
var _ docscheck.SchemaValidator = (*Validator)(nil)

// Validator validates instances against one compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Validate returns one issue per violated schema rule.
func (v *Validator) Validate(instance any) ([]docscheck.ValidationIssue, error) {
	err := v.schema.Validate(instance)
	if err == nil {
		return nil, nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}

	var issues []docscheck.ValidationIssue
	collect(verr, &issues)
	return issues, nil
}

// collect flattens the cause tree to its leaves, which carry the specific
// rule failures.
func collect(err *jsonschema.ValidationError, issues *[]docscheck.ValidationIssue) {
	if len(err.Causes) == 0 {
		*issues = append(*issues, docscheck.ValidationIssue{
			InstancePath: err.InstanceLocation,
			KeywordPath:  err.KeywordLocation,
			Message:      err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collect(cause, issues)
	}
}
