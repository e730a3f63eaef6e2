package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/aalvaropc/customs/internal/domain"
)

func TestBuildFormRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed reading body: %v", err)
			return
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected method POST, got %s", r.Method)
		}
		if r.URL.Path != "/form" {
			t.Errorf("expected path /form, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form content-type, got %s", ct)
		}
		if r.Header.Get("X-Test") != "yes" {
			t.Errorf("expected header X-Test")
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			t.Errorf("expected form body: %v", err)
			return
		}
		if values.Get("hblNo") != "ABC&123" {
			t.Errorf("expected hblNo value, got %q", values.Get("hblNo"))
		}
		if _, ok := values["mblNo"]; !ok {
			t.Errorf("expected empty mblNo to be sent")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	form := url.Values{}
	form.Set("hblNo", "ABC&123")
	form.Set("mblNo", "")

	req, err := BuildFormRequest(context.Background(), server.URL+"/form", form, http.Header{"X-Test": {"yes"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed request: %v", err)
	}
	resp.Body.Close()
}

func TestBuildFormRequest_EmptyEndpoint(t *testing.T) {
	_, err := BuildFormRequest(context.Background(), "  ", nil, nil)
	if err == nil {
		t.Fatal("expected error for empty endpoint")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

func TestBuildFormRequest_NilFormSendsEmptyBody(t *testing.T) {
	req, err := BuildFormRequest(context.Background(), "http://example.invalid/x", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ContentLength != 0 {
		t.Fatalf("expected empty body, got length %d", req.ContentLength)
	}
}

func TestBuildFormRequest_KeepsExplicitContentType(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req, err := BuildFormRequest(context.Background(), "http://example.invalid/x", url.Values{}, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded; charset=UTF-8" {
		t.Fatalf("content-type overwritten: %s", got)
	}
}
