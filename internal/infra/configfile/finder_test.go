package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/customs/internal/domain"
)

func TestFindRoot_FindsFileUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "customs.yaml"), []byte("customs: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Fatalf("expected %q, got %q", root, got)
	}
}

func TestFindRoot_FilePathUsesItsDirectory(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(root, "customs.yaml")
	if err := os.WriteFile(cfg, []byte("customs: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Fatalf("expected %q, got %q", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	f := &Finder{ConfigFile: "definitely-not-here-customs.yaml"}
	_, err := f.FindRoot(t.TempDir())
	if err == nil {
		t.Fatal("expected not found")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}
