package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go_icongen/core"
	"go_icongen/logging"
)

func testLogger(t *testing.T) (*logging.Logger, *observer.ObservedLogs) {
	t.Helper()
	obsCore, logs := observer.New(zapcore.DebugLevel)
	return logging.NewLoggerFromCore(obsCore), logs
}

func TestRun_WritesThreeIdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	config := &core.Config{OutputDir: dir}
	logger, logs := testLogger(t)
	var out bytes.Buffer

	if err := run(config, logger, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	var first []byte
	for i, name := range core.OutputFileNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile(%q) error: %v", name, err)
		}
		if i == 0 {
			first = data
			continue
		}
		if !bytes.Equal(data, first) {
			t.Errorf("%q differs from %q", name, core.OutputFileNames[0])
		}
	}

	if !strings.Contains(out.String(), "Icon created") {
		t.Errorf("completion message = %q", out.String())
	}
	if logs.FilterMessage("Icon files written").Len() != 1 {
		t.Error("expected one \"Icon files written\" log entry")
	}
	if logs.FilterMessage("rendering icon text").Len() != 1 {
		t.Error("expected generator to log the resolved font")
	}
}

func TestRun_MissingOutputDir(t *testing.T) {
	config := &core.Config{OutputDir: filepath.Join(t.TempDir(), "AppIcon.appiconset")}
	logger, _ := testLogger(t)
	var out bytes.Buffer

	err := run(config, logger, &out)
	if code := core.GetErrorCode(err); code != core.ErrCodeOutputDirMissing {
		t.Errorf("run() code = %q, want %q (err=%v)", code, core.ErrCodeOutputDirMissing, err)
	}
	if out.Len() != 0 {
		t.Errorf("no completion message expected on failure, got %q", out.String())
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the first filename makes that write fail.
	if err := os.Mkdir(filepath.Join(dir, core.OutputFileNames[0]), 0755); err != nil {
		t.Fatalf("Mkdir() error: %v", err)
	}
	logger, _ := testLogger(t)
	var out bytes.Buffer

	err := run(&core.Config{OutputDir: dir}, logger, &out)

	var outErr *core.OutputError
	if !errors.As(err, &outErr) {
		t.Fatalf("run() error = %v, want *core.OutputError", err)
	}
	if filepath.Base(outErr.Path) != core.OutputFileNames[0] {
		t.Errorf("failed path = %q", outErr.Path)
	}
}

func TestStart_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, t.TempDir())
	t.Setenv(core.EnvOutputDir, dir)
	t.Setenv(core.EnvLogFile, filepath.Join(dir, "icongen.log"))
	t.Setenv(core.EnvDevMode, "false")
	t.Setenv(core.EnvLogLevel, "")

	if code := start(); code != core.ExitCodeSuccess {
		t.Fatalf("start() = %d (%s), want success", code, core.ExitCodeName(code))
	}
	for _, name := range core.OutputFileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %q: %v", name, err)
		}
	}

	t.Setenv(core.EnvOutputDir, filepath.Join(dir, "missing"))
	if code := start(); code != core.ExitCodeError {
		t.Errorf("start() with missing dir = %d, want %d", code, core.ExitCodeError)
	}
}

func TestStart_LogFileUnavailable(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, t.TempDir())
	t.Setenv(core.EnvOutputDir, dir)
	t.Setenv(core.EnvLogFile, filepath.Join(dir, "no-such-dir", "icongen.log"))
	t.Setenv(core.EnvDevMode, "false")
	t.Setenv(core.EnvLogLevel, "")

	if code := start(); code != core.ExitCodeSuccess {
		t.Fatalf("start() = %d (%s), want success without a log file", code, core.ExitCodeName(code))
	}
	for _, name := range core.OutputFileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %q: %v", name, err)
		}
	}
}

func TestStart_FailureLogsExitName(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "icongen.log")
	chdirForTest(t, t.TempDir())
	t.Setenv(core.EnvOutputDir, filepath.Join(dir, "missing"))
	t.Setenv(core.EnvLogFile, logPath)
	t.Setenv(core.EnvDevMode, "false")
	t.Setenv(core.EnvLogLevel, "")

	if code := start(); code != core.ExitCodeError {
		t.Fatalf("start() = %d, want %d", code, core.ExitCodeError)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	var found bool
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]interface{}
		if json.Unmarshal([]byte(line), &entry) != nil {
			continue
		}
		if entry["message"] == "Icon generation failed" {
			found = true
			if entry["exit"] != core.ExitCodeName(core.ExitCodeError) {
				t.Errorf("exit field = %v, want %q", entry["exit"], core.ExitCodeName(core.ExitCodeError))
			}
			if entry["code"] != core.ErrCodeOutputDirMissing {
				t.Errorf("code field = %v, want %q", entry["code"], core.ErrCodeOutputDirMissing)
			}
		}
	}
	if !found {
		t.Errorf("no failure entry in log file: %s", data)
	}
}

// chdirForTest changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
