package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeConfig(t, "statext.yaml", `
pdf: statements/boxer.pdf
targetYear: "2024"
aws:
  region: eu-west-1
cache:
  dir: /tmp/statext
  clear: true
verbose: true
`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.PDF != "statements/boxer.pdf" || fc.TargetYear != "2024" {
		t.Fatalf("got %+v", fc)
	}
	if fc.AWS.Region != "eu-west-1" {
		t.Fatalf("region: got %q", fc.AWS.Region)
	}
	if fc.Cache.Dir != "/tmp/statext" || !fc.Cache.Clear {
		t.Fatalf("cache: got %+v", fc.Cache)
	}
	if !fc.Verbose {
		t.Fatal("verbose not set")
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeConfig(t, "statext.json", `{"pdf": "a.pdf", "blocks": {"file": "blocks.json"}}`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.PDF != "a.pdf" || fc.Blocks.File != "blocks.json" {
		t.Fatalf("got %+v", fc)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{PDFPath: "from-flag.pdf", CacheDir: ".statext-cache"}
	var fc FileConfig
	fc.PDF = "from-file.pdf"
	fc.TargetYear = "2023"
	fc.Cache.Dir = "/var/cache/statext"
	ApplyFileConfig(&cfg, fc)
	if cfg.PDFPath != "from-flag.pdf" {
		t.Fatalf("explicit flag lost: %q", cfg.PDFPath)
	}
	if cfg.TargetYear != "2023" {
		t.Fatalf("file value not applied: %q", cfg.TargetYear)
	}
	// The flag default yields to the file value
	if cfg.CacheDir != "/var/cache/statext" {
		t.Fatalf("cache dir: %q", cfg.CacheDir)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(Config{}); err == nil {
		t.Fatal("expected error without pdf or blocks file")
	}
	if err := ValidateConfig(Config{BlocksFile: "blocks.json"}); err != nil {
		t.Fatalf("blocks file alone should validate: %v", err)
	}
	if err := ValidateConfig(Config{PDFPath: "a.pdf"}); err != nil {
		t.Fatalf("pdf alone should validate: %v", err)
	}
	if err := ValidateConfig(Config{PDFPath: "a.pdf", CacheMaxAge: -time.Hour}); err == nil {
		t.Fatal("expected error for negative maxAge")
	}
}
