package jsonschema

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// defaultsExtension names the keyword extension that requires instance
// values to equal schema-declared defaults.
const defaultsExtension = "enforceDefaults"

// DefaultExemption is the one default value that is documentation-only:
// a subschema declaring it accepts any instance value.
const DefaultExemption = "See values.yaml"

// The extension hooks into the standard "default" keyword, so its meta
// schema carries no constraints of its own.
var defaultsMeta = jsonschema.MustCompileString("enforcedefaults.json", `{}`)

type defaultsCompiler struct{}

func (defaultsCompiler) Compile(_ jsonschema.CompilerContext, m map[string]any) (jsonschema.ExtSchema, error) {
	if def, ok := m["default"]; ok {
		return defaultSchema{def: def}, nil
	}
	// Subschemas without a default carry no extra rule.
	return nil, nil
}

type defaultSchema struct {
	def any
}

func (s defaultSchema) Validate(ctx jsonschema.ValidationContext, v any) error {
	if str, ok := s.def.(string); ok && str == DefaultExemption {
		return nil
	}
	if equalValues(s.def, v) {
		return nil
	}
	return ctx.Error("default", "%v is not equal to the default of %v", v, s.def)
}

// equalValues compares a schema default against an instance value. The two
// come from different decoders (the compiler decodes numbers as json.Number,
// the loader as float64), so numbers compare by value.
func equalValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok || bok {
		return aok && bok && af == bf
	}

	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !equalValues(v, bvv) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValues(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
