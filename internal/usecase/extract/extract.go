package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/customs/internal/domain"
)

// Rules maps a field name to the JSONPath expression that locates it.
type Rules map[string]string

// Parse decodes body as JSON. Numbers are kept as json.Number so they
// render exactly as sent.
func Parse(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.OpError{
			Op:   "extract.parse",
			Kind: domain.KindMalformedResponse,
			Err:  err,
		}
	}
	return doc, nil
}

// Lookup evaluates expr against doc. A path that does not resolve is a schema mismatch.
func Lookup(doc any, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "extract.lookup",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression"),
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "extract.lookup",
			Kind: domain.KindSchemaMismatch,
			Path: expr,
			Err:  fmt.Errorf("%w: %v", domain.ErrSchemaMismatch, err),
		}
	}
	return val, nil
}

// String resolves expr to a scalar rendered as text. JSON null yields "".
func String(doc any, expr string) (string, error) {
	val, err := Lookup(doc, expr)
	if err != nil {
		return "", err
	}

	s, err := toString(val)
	if err != nil {
		return "", &domain.OpError{
			Op:   "extract.string",
			Kind: domain.KindSchemaMismatch,
			Path: expr,
			Err:  fmt.Errorf("%w: %v", domain.ErrSchemaMismatch, err),
		}
	}
	return s, nil
}

// OptionalString is String with "" for paths that do not resolve.
func OptionalString(doc any, expr string) (string, error) {
	if _, err := Lookup(doc, expr); err != nil {
		if domain.IsKind(err, domain.KindSchemaMismatch) {
			return "", nil
		}
		return "", err
	}
	return String(doc, expr)
}

// Array resolves expr to a JSON array.
func Array(doc any, expr string) ([]any, error) {
	val, err := Lookup(doc, expr)
	if err != nil {
		return nil, err
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, &domain.OpError{
			Op:   "extract.array",
			Kind: domain.KindSchemaMismatch,
			Path: expr,
			Err:  fmt.Errorf("%w: expected array, got %s", domain.ErrSchemaMismatch, typeName(val)),
		}
	}
	return arr, nil
}

// Fields resolves every rule as a required string.
// All missing fields are reported together, sorted by name.
func Fields(doc any, rules Rules) (map[string]string, error) {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys) // stable error messages

	out := make(map[string]string, len(rules))
	var missing []string
	firstPath := ""

	for _, name := range keys {
		s, err := String(doc, rules[name])
		if err != nil {
			if !domain.IsKind(err, domain.KindSchemaMismatch) {
				return nil, err
			}
			if firstPath == "" {
				firstPath = strings.TrimSpace(rules[name])
			}
			missing = append(missing, name)
			continue
		}
		out[name] = s
	}

	if len(missing) > 0 {
		return nil, &domain.OpError{
			Op:   "extract.fields",
			Kind: domain.KindSchemaMismatch,
			Path: firstPath,
			Err:  fmt.Errorf("%w: missing or non-scalar fields: %s", domain.ErrSchemaMismatch, strings.Join(missing, ", ")),
		}
	}
	return out, nil
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	default:
		return "", fmt.Errorf("expected scalar, got %s", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case json.Number, float64, int, int64, uint64:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}
