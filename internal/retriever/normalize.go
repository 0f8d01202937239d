package retriever

import (
	"fmt"
	"reflect"
	"slices"
)

// The retriever API has changed its return shape more than once across
// versions: a bare query string, a (query, rows, metadata) sequence, a
// keyed map, or a typed result object. Normalize absorbs that skew so
// the tool handlers only ever see one shape.
//
// Classification is a closed set of shape variants, dispatched in a
// fixed priority order because the shapes overlap. Normalize is total:
// it never returns an error and never panics, degrading through the
// variants down to a textual fallback.

// shapeKind is the discriminant for the recognized shape variants.
type shapeKind int

const (
	shapeText shapeKind = iota
	shapeSequence
	shapeMapping
	shapeAttribute
	shapeUnrecognized
)

// queryTextKeys and rowKeys are the mapping keys claimed by the first
// two fields of the canonical triple, in priority order.
var (
	queryTextKeys = []string{"cypher", "cypher_text", "query"}
	rowKeys       = []string{"data", "rows", "records"}
)

// attributeNames are the exported fields whose presence makes a struct
// an attribute-bearing value.
var attributeNames = []string{"Cypher", "Data", "Records", "Metadata"}

// Normalize reduces a raw retriever output of unknown shape to the
// canonical Result triple. It is pure and safe for concurrent use.
func Normalize(raw any) Result {
	switch classify(raw) {
	case shapeText:
		return Result{QueryText: raw.(string), Metadata: map[string]any{}}
	case shapeSequence:
		return normalizeSequence(raw.([]any))
	case shapeMapping:
		return normalizeMapping(raw.(map[string]any))
	case shapeAttribute:
		return normalizeAttributes(raw)
	default:
		if raw == nil {
			return Result{Metadata: map[string]any{}}
		}
		return Result{QueryText: fmt.Sprintf("%v", raw), Metadata: map[string]any{}}
	}
}

// classify assigns a raw value to exactly one shape variant.
func classify(raw any) shapeKind {
	switch raw.(type) {
	case string:
		return shapeText
	case []any:
		return shapeSequence
	case map[string]any:
		return shapeMapping
	}
	if isAttributeBearing(raw) {
		return shapeAttribute
	}
	return shapeUnrecognized
}

// normalizeSequence handles list-like outputs such as (cypher, rows) or
// (cypher, rows, metadata).
func normalizeSequence(seq []any) Result {
	res := Result{Metadata: map[string]any{}}

	if len(seq) >= 1 {
		switch first := seq[0].(type) {
		case string:
			res.QueryText = first
		case map[string]any:
			if c, ok := first["cypher"].(string); ok {
				res.QueryText = c
			}
		}
	}

	for i := 1; i < len(seq); i++ {
		switch v := seq[i].(type) {
		case []any:
			// Plain reassignment: when several sub-sequences appear the
			// last one wins. Kept for compatibility with the retriever's
			// historical behavior; see normalize_test.go.
			res.Rows = v
		case map[string]any:
			for k, val := range v {
				res.Metadata[k] = val
			}
		}
	}

	return res
}

// normalizeMapping handles keyed outputs. The recognized keys are
// consumed even when their values are unusable for the field they name;
// only unrecognized keys flow into metadata.
func normalizeMapping(m map[string]any) Result {
	res := Result{Metadata: map[string]any{}}

	for _, k := range queryTextKeys {
		if s, ok := m[k].(string); ok && s != "" {
			res.QueryText = s
			break
		}
	}

	for _, k := range rowKeys {
		if rows, ok := m[k].([]any); ok {
			res.Rows = rows
			break
		}
	}

	for k, v := range m {
		if slices.Contains(queryTextKeys, k) || slices.Contains(rowKeys, k) {
			continue
		}
		res.Metadata[k] = v
	}

	return res
}

// isAttributeBearing reports whether raw is a struct (or pointer to
// struct) exposing at least one of the recognized result fields.
func isAttributeBearing(raw any) bool {
	v := reflect.ValueOf(raw)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return false
	}
	t := v.Type()
	for _, name := range attributeNames {
		if _, ok := t.FieldByName(name); ok {
			return true
		}
	}
	return false
}

// normalizeAttributes handles typed result objects. Every extraction
// step reports found/absent instead of failing, so a partially shaped
// object still yields a usable triple.
func normalizeAttributes(raw any) Result {
	res := Result{Metadata: map[string]any{}}

	v := reflect.ValueOf(raw)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if s, ok := fieldString(v, "Cypher"); ok {
		res.QueryText = s
	}

	// First non-empty row source wins.
	for _, name := range []string{"Data", "Rows", "Records"} {
		rows, ok := fieldRows(v, name)
		if ok && len(rows) > 0 {
			res.Rows = rows
			break
		}
	}

	if field := v.FieldByName("Metadata"); field.IsValid() && field.CanInterface() {
		if m, ok := field.Interface().(map[string]any); ok {
			for k, val := range m {
				res.Metadata[k] = val
			}
		}
	}

	return res
}

// fieldString extracts a non-empty string field, reporting absence
// otherwise.
func fieldString(v reflect.Value, name string) (string, bool) {
	field := v.FieldByName(name)
	if !field.IsValid() || !field.CanInterface() {
		return "", false
	}
	s, ok := field.Interface().(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// fieldRows extracts a sequence-valued field as []any. A []any value
// passes through unchanged; any other slice is converted element by
// element, using the Data accessor where an element provides one and
// keeping the raw element where it does not. Non-sequence values are
// reported absent.
func fieldRows(v reflect.Value, name string) ([]any, bool) {
	field := v.FieldByName(name)
	if !field.IsValid() || !field.CanInterface() {
		return nil, false
	}

	if rows, ok := field.Interface().([]any); ok {
		return rows, true
	}

	if field.Kind() != reflect.Slice {
		return nil, false
	}

	rows := make([]any, 0, field.Len())
	for i := 0; i < field.Len(); i++ {
		elem := field.Index(i).Interface()
		if converter, ok := elem.(RowConverter); ok && !isNil(elem) {
			rows = append(rows, converter.Data())
			continue
		}
		rows = append(rows, elem)
	}
	return rows, true
}

// isNil reports whether a non-nil interface wraps a nil pointer.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
