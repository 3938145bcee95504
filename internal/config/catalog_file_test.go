package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadModelCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "models.yml")
	content := `models:
  - id: qwen/qwen-2-7b-instruct:free
    name: Qwen 2 7B Instruct
  - id: internal/no-name
  - id: "  "
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	curated, err := LoadModelCatalogFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(curated) != 2 {
		t.Fatalf("expected 2 curated models, got %d", len(curated))
	}
	if curated[0].Name != "Qwen 2 7B Instruct" {
		t.Fatalf("unexpected name: %q", curated[0].Name)
	}
	// Missing name falls back to the id
	if curated[1].Name != "internal/no-name" {
		t.Fatalf("expected name fallback to id, got %q", curated[1].Name)
	}
}

func TestLoadModelCatalogFileMissing(t *testing.T) {
	if _, err := LoadModelCatalogFile(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := LoadModelCatalogFile("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
