package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/customs/internal/domain"
)

func mustParse(t *testing.T, body string) any {
	t.Helper()
	doc, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestParse_NonJSONBody(t *testing.T) {
	_, err := Parse([]byte("<html>oops</html>"))
	if err == nil {
		t.Fatal("expected error for non-JSON body")
	}
	if !domain.IsKind(err, domain.KindMalformedResponse) {
		t.Fatalf("expected malformed_response, got %v", err)
	}
}

func TestString_Success(t *testing.T) {
	doc := mustParse(t, `{"resultList":[{"cargMtNo":"123456789"}]}`)
	got, err := String(doc, "$.resultList[0].cargMtNo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "123456789" {
		t.Fatalf("expected 123456789, got %q", got)
	}
}

func TestString_NumberKeepsLexicalForm(t *testing.T) {
	doc := mustParse(t, `{"w":12.50,"n":3}`)
	w, err := String(doc, "$.w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != "12.50" {
		t.Fatalf("expected 12.50, got %q", w)
	}
	n, _ := String(doc, "$.n")
	if n != "3" {
		t.Fatalf("expected 3, got %q", n)
	}
}

func TestString_NullIsEmpty(t *testing.T) {
	doc := mustParse(t, `{"name":null}`)
	got, err := String(doc, "$.name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestString_MissingKeyIsSchemaMismatch(t *testing.T) {
	doc := mustParse(t, `{"x":1}`)
	_, err := String(doc, "$.token")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindSchemaMismatch) {
		t.Fatalf("expected schema_mismatch, got %v", err)
	}
	if !errors.Is(err, domain.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch in chain")
	}
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Path != "$.token" {
		t.Fatalf("expected path $.token, got %q", oe.Path)
	}
}

func TestString_ObjectIsSchemaMismatch(t *testing.T) {
	doc := mustParse(t, `{"meta":{"key":"val"}}`)
	_, err := String(doc, "$.meta")
	if !domain.IsKind(err, domain.KindSchemaMismatch) {
		t.Fatalf("expected schema_mismatch, got %v", err)
	}
}

func TestLookup_EmptyExpression(t *testing.T) {
	_, err := Lookup(map[string]any{}, "  ")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestOptionalString(t *testing.T) {
	doc := mustParse(t, `{"snarAddr":"Busan"}`)

	got, err := OptionalString(doc, "$.snarAddr")
	if err != nil || got != "Busan" {
		t.Fatalf("expected Busan, got %q (%v)", got, err)
	}

	got, err = OptionalString(doc, "$.snarTelno")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}

func TestArray(t *testing.T) {
	doc := mustParse(t, `{"list":[1,2],"obj":{}}`)

	arr, err := Array(doc, "$.list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arr) != 2 {
		t.Fatalf("expected 2 items, got %d", len(arr))
	}

	_, err = Array(doc, "$.obj")
	if !domain.IsKind(err, domain.KindSchemaMismatch) {
		t.Fatalf("expected schema_mismatch for object, got %v", err)
	}
	if !strings.Contains(err.Error(), "object") {
		t.Fatalf("expected type name in error, got %v", err)
	}
}

func TestFields_AllPresent(t *testing.T) {
	doc := mustParse(t, `{"m":{"a":"1","b":2}}`)
	got, err := Fields(doc, Rules{"a": "$.m.a", "b": "$.m.b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["a"] != "1" || got["b"] != "2" {
		t.Fatalf("unexpected fields: %v", got)
	}
}

func TestFields_ReportsAllMissingSorted(t *testing.T) {
	doc := mustParse(t, `{"m":{"a":"1"}}`)
	_, err := Fields(doc, Rules{"zzz": "$.m.z", "a": "$.m.a", "bbb": "$.m.b"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindSchemaMismatch) {
		t.Fatalf("expected schema_mismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "bbb, zzz") {
		t.Fatalf("expected sorted missing fields, got %v", err)
	}
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Path != "$.m.b" {
		t.Fatalf("expected first missing path $.m.b, got %q", oe.Path)
	}
}
