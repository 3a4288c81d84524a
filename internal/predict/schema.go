package predict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const resultSchemaURL = "schema://prediction-result.json"

// resultSchema describes the fields a success body must carry.
// genuine_probability, risk_level and recommendation may be absent but must
// have the right type when present.
var resultSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"prediction":          map[string]any{"type": "string"},
		"confidence":          map[string]any{"type": "number", "minimum": 0},
		"fraud_probability":   map[string]any{"type": "number", "minimum": 0},
		"genuine_probability": map[string]any{"type": "number", "minimum": 0},
		"risk_level":          map[string]any{"type": "string"},
		"recommendation":      map[string]any{"type": "string"},
	},
	"required": []any{"prediction", "confidence", "fraud_probability"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledResultSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so the compiler sees decoded values.
		raw, err := json.Marshal(resultSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(resultSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(resultSchemaURL)
	})
	return compiled, compileErr
}

// validateResultBody checks raw against the result schema.
func validateResultBody(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledResultSchema()
	if err != nil {
		return fmt.Errorf("compile result schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
