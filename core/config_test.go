package core

import (
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvDevMode, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, DefaultLogFile)
	}
	if cfg.DevMode {
		t.Error("DevMode = true, want false")
	}
	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty", cfg.LogLevel)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvOutputDir, dir)
	t.Setenv(EnvLogFile, filepath.Join(dir, "gen.log"))
	t.Setenv(EnvDevMode, "yes")
	t.Setenv(EnvLogLevel, " warn ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.OutputDir != dir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, dir)
	}
	if cfg.LogFile != filepath.Join(dir, "gen.log") {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if !cfg.DevMode {
		t.Error("DevMode = false, want true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoadConfig_BlankOutputDir(t *testing.T) {
	t.Setenv(EnvOutputDir, "   ")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want error")
	}
	if code := GetErrorCode(err); code != ErrCodeMissingConfig {
		t.Errorf("GetErrorCode() = %q, want %q", code, ErrCodeMissingConfig)
	}
}

func TestConfig_OutputPaths(t *testing.T) {
	cfg := &Config{OutputDir: "/assets/AppIcon.appiconset/"}

	got := cfg.OutputPaths()
	want := []string{
		filepath.Join("/assets/AppIcon.appiconset", "doc-icon-parts-center-image@2x.png"),
		filepath.Join("/assets/AppIcon.appiconset", "doc-icon-parts-center-image@2x 1.png"),
		filepath.Join("/assets/AppIcon.appiconset", "doc-icon-parts-center-image@2x 2.png"),
	}

	if len(got) != len(want) {
		t.Fatalf("OutputPaths() returned %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OutputPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
