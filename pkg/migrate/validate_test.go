package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations invalid: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "not_versioned.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected filename error")
	}
}

func TestValidateDirRejectsMissingDownSection(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "20250101000000_broken.sql")
	if err := os.WriteFile(file, []byte("-- +goose Up\nSELECT 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "goose Down") {
		t.Fatalf("expected missing Down error, got %v", err)
	}
}

func TestCreateSQLMigrationWritesTemplate(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Premium Flag")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "-- +goose Up") {
		t.Fatalf("template missing Up header: %s", b)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("created migration did not validate: %v", err)
	}
}
