package progress

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema describes the stored progress record: an object mapping
// lesson ids to true.
const recordSchema = `{
  "type": "object",
  "propertyNames": {"pattern": "^[a-z0-9][a-z0-9_-]*$"},
  "additionalProperties": {"type": "boolean"}
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func recordValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(recordSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://progress-record.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

// decodeRecord parses and validates a stored record.
func decodeRecord(raw string) (map[string]bool, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := recordValidator()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	var record map[string]bool
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, err
	}
	return record, nil
}
