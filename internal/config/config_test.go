package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.Share.URLTemplate != DefaultShareURL {
		t.Errorf("expected default share template %q, got %q", DefaultShareURL, cfg.Share.URLTemplate)
	}
	if cfg.Speech.Lang != "ar" {
		t.Errorf("expected default lang %q, got %q", "ar", cfg.Speech.Lang)
	}
	if len(cfg.Content.Paths) != 0 {
		t.Errorf("expected bundled content by default, got %v", cfg.Content.Paths)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.azkar.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Content.Paths = []string{"content/**/*.yaml", "extra.yaml"}
	original.Share.URLTemplate = "https://t.me/share/url?url=&text={text}"
	original.Speech.Command = []string{"espeak-ng", "-v", "{lang}", "{text}"}
	original.Site.OutputDir = "public"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Share.URLTemplate != original.Share.URLTemplate {
		t.Errorf("url_template: got %q, want %q", loaded.Share.URLTemplate, original.Share.URLTemplate)
	}
	if loaded.Share.Attribution != original.Share.Attribution {
		t.Errorf("attribution: got %q, want %q", loaded.Share.Attribution, original.Share.Attribution)
	}
	if loaded.Site.OutputDir != original.Site.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.Site.OutputDir, original.Site.OutputDir)
	}
	if len(loaded.Content.Paths) != len(original.Content.Paths) {
		t.Fatalf("paths length: got %d, want %d", len(loaded.Content.Paths), len(original.Content.Paths))
	}
	for i, v := range loaded.Content.Paths {
		if v != original.Content.Paths[i] {
			t.Errorf("paths[%d]: got %q, want %q", i, v, original.Content.Paths[i])
		}
	}
	if len(loaded.Speech.Command) != 4 || loaded.Speech.Command[3] != "{text}" {
		t.Errorf("speech command: got %v", loaded.Speech.Command)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("AZKAR_SERVER__PORT", "7070")
	t.Setenv("AZKAR_LOG_LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 7070 {
		t.Errorf("nested env override failed: got %d, want 7070", loaded.Server.Port)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("env override failed: got %q, want %q", loaded.LogLevel, "debug")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"AZKAR_LOG_LEVEL", "log_level"},
		{"AZKAR_SERVER__PORT", "server.port"},
		{"AZKAR_SHARE__URL_TEMPLATE", "share.url_template"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty share template", func(c *Config) { c.Share.URLTemplate = "" }, true},
		{"share template without slot", func(c *Config) { c.Share.URLTemplate = "https://wa.me/" }, true},
		{"empty lang", func(c *Config) { c.Speech.Lang = "" }, true},
		{"empty output dir", func(c *Config) { c.Site.OutputDir = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.yaml", []string{"**/*.yaml"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
