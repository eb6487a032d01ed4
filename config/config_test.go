package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "tuikit.toml", `
[readline]
multiline = true
completion_limit = 16

[history]
file = "/tmp/hist"
limit = 500
watch = true

[labels]
"Ctrl+P" = "paste"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Readline.Multiline || cfg.Readline.CompletionLimit != 16 {
		t.Errorf("readline = %+v", cfg.Readline)
	}
	if cfg.History.File != "/tmp/hist" || cfg.History.Limit != 500 || !cfg.History.Watch {
		t.Errorf("history = %+v", cfg.History)
	}
	if cfg.Labels["Ctrl+P"] != "paste" {
		t.Errorf("labels = %v", cfg.Labels)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "tuikit.yaml", `
readline:
  multiline: true
history:
  file: /tmp/hist
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Readline.Multiline || cfg.History.File != "/tmp/hist" || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Labels["Ctrl+L"] != "clear" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadBadFormat(t *testing.T) {
	path := writeFile(t, "tuikit.ini", "x=y")
	if _, err := Load(path); err == nil {
		t.Error("unsupported extension should fail")
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeFile(t, "broken.toml", "[[[")
	if _, err := Load(path); err == nil {
		t.Error("malformed file should fail")
	}
}
