package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/printquote/printquote/internal/model"
	"github.com/printquote/printquote/internal/pricing"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultProfitMargin = 50.0
	cfg.Theme = "dark"

	input := model.DefaultCostInput()
	input.ProductName = "Vase"
	history := []model.HistoryRecord{
		model.NewHistoryRecord("alice", input, pricing.Calculate(input)),
	}

	if err := ExportAllData(path, cfg, history); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultProfitMargin != 50.0 {
		t.Errorf("expected DefaultProfitMargin=50.0, got %f", backup.Config.DefaultProfitMargin)
	}
	if len(backup.History) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(backup.History))
	}
	if backup.History[0].Input.ProductName != "Vase" {
		t.Errorf("expected product Vase, got %s", backup.History[0].Input.ProductName)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version")
	}
}
