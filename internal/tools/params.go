package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Params is a map of Cypher query parameters with custom JSON unmarshaling
// that preserves numeric types correctly for Neo4j.
//
// When unmarshaling from JSON:
//   - Whole numbers (e.g., 1, 42, -10) become int64
//   - Numbers with fractional parts (e.g., 1.5, 3.14) become float64
//   - Other types (strings, booleans, null) are preserved as-is
type Params map[string]any

func (cp *Params) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var temp map[string]any
	if err := decoder.Decode(&temp); err != nil {
		return err
	}
	paramConverted, ok := ConvertNumbers(temp).(map[string]any)
	if !ok {
		return fmt.Errorf("error during unmarshaling of Params")
	}
	*cp = paramConverted
	return nil
}

// ConvertNumbers recursively converts json.Number values to int64 where
// possible, falling back to float64 for fractional values.
func ConvertNumbers(input any) any {
	switch v := input.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String() // Fallback

	case map[string]any:
		for k, val := range v {
			v[k] = ConvertNumbers(val)
		}
		return v

	case []any:
		for i, val := range v {
			v[i] = ConvertNumbers(val)
		}
		return v
	}
	return input
}

// BindArguments unmarshals the tool call arguments into target, routing
// through JSON so that the Params custom unmarshaler applies.
func BindArguments(request mcp.CallToolRequest, target any) error {
	jsonBytes, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments to JSON: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonBytes))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	return nil
}
