package tutor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchemaJSON is the structural contract for one extracted span:
// a single step/text/complete record, or a wrapper holding a list of
// them. Extra properties are tolerated; the model pads freely.
const recordSchemaJSON = `{
	"$defs": {
		"record": {
			"oneOf": [
				{
					"type": "object",
					"properties": {
						"type": {"const": "step"},
						"step": {"type": "integer", "minimum": 1},
						"totalSteps": {"type": "integer", "minimum": 1},
						"question": {"type": "string"},
						"options": {"type": "array", "items": {"type": "string"}},
						"correctIndex": {"type": "integer", "minimum": 0}
					},
					"required": ["type", "step", "totalSteps", "question", "options"]
				},
				{
					"type": "object",
					"properties": {
						"type": {"const": "text"},
						"content": {"type": "string"}
					},
					"required": ["type"]
				},
				{
					"type": "object",
					"properties": {
						"type": {"const": "complete"},
						"content": {"type": "string"}
					},
					"required": ["type"]
				}
			]
		}
	},
	"oneOf": [
		{"$ref": "#/$defs/record"},
		{
			"type": "object",
			"properties": {
				"responses": {
					"type": "array",
					"items": {"$ref": "#/$defs/record"}
				}
			},
			"required": ["responses"]
		}
	]
}`

var (
	recordSchemaOnce sync.Once
	recordSchema     *jsonschema.Schema
	recordSchemaErr  error
)

func compiledRecordSchema() (*jsonschema.Schema, error) {
	recordSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(recordSchemaJSON))
		if err != nil {
			recordSchemaErr = fmt.Errorf("parse record schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("record.json", doc); err != nil {
			recordSchemaErr = fmt.Errorf("add record schema: %w", err)
			return
		}
		recordSchema, recordSchemaErr = compiler.Compile("record.json")
	})
	return recordSchema, recordSchemaErr
}

// validRecordSpan reports whether an extracted JSON span satisfies the
// wire contract. Invalid spans are dropped by the parser, not surfaced.
func validRecordSpan(span string) bool {
	schema, err := compiledRecordSchema()
	if err != nil {
		// A broken embedded schema is a programming error; fail open
		// so parsing still works.
		return true
	}

	value, err := jsonschema.UnmarshalJSON(strings.NewReader(span))
	if err != nil {
		return false
	}
	return schema.Validate(value) == nil
}
