// pyready_test.go
package pyready

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pyready/pyready/pkg/core"
)

// stub interpreter: reports a version, imports anything, runs pip happily.
const stubScript = `#!/bin/sh
case "$1" in
  --version) echo "Python 3.11.4"; exit 0 ;;
  -c) exit 0 ;;
  -m) exit 0 ;;
esac
exit 1
`

func writeStubInterpreter(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	path := filepath.Join(binDir, "python3")
	if err := os.WriteFile(path, []byte(stubScript), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)
	return path
}

func TestNewManagerWithoutInterpreter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if _, err := NewManager(DefaultConfig(), nil); !errors.Is(err, ErrInterpreterNotFound) {
		t.Fatalf("expected ErrInterpreterNotFound, got %v", err)
	}
}

func TestNewManagerRejectsUnavailableOverride(t *testing.T) {
	writeStubInterpreter(t)
	cfg := DefaultConfig()
	cfg.Installer = "conda"

	if _, err := NewManager(cfg, nil); !errors.Is(err, ErrInstallerNotAvailable) {
		t.Fatalf("expected ErrInstallerNotAvailable, got %v", err)
	}
}

func TestEnsureAllPresent(t *testing.T) {
	path := writeStubInterpreter(t)

	mgr, err := NewManager(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	if mgr.Interpreter().Path != path {
		t.Fatalf("expected interpreter %q, got %q", path, mgr.Interpreter().Path)
	}
	if mgr.InstallerName() != "pip" {
		t.Fatalf("expected pip installer, got %q", mgr.InstallerName())
	}

	var present []string
	report := mgr.Ensure(context.Background(), Events{
		Present: func(pkg string) { present = append(present, pkg) },
	})

	if report.Outcome != OutcomeReady {
		t.Fatalf("expected ready outcome, got %s (%v)", report.Outcome, report.Err)
	}
	if report.Version != "3.11.4" {
		t.Fatalf("unexpected version: %q", report.Version)
	}
	if len(present) != len(core.DefaultPackages()) {
		t.Fatalf("expected every package present, got %v", present)
	}
}

func TestStatusProbesWithoutInstalling(t *testing.T) {
	writeStubInterpreter(t)

	mgr, err := NewManager(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	statuses, err := mgr.Status(context.Background())
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if len(statuses) != 5 {
		t.Fatalf("expected five rows, got %d", len(statuses))
	}
	for _, s := range statuses {
		if !s.Present || s.Installed {
			t.Fatalf("unexpected status: %#v", s)
		}
	}
	if statuses[3].Module != "PyQt5" {
		t.Fatalf("expected PyQt5 module for pyqt5, got %q", statuses[3].Module)
	}
}

func TestErrorWrapper(t *testing.T) {
	inner := errors.New("boom")
	err := &Error{Op: "install", Package: "numpy", Err: inner}
	if err.Error() != "install numpy: boom" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Fatal("expected Unwrap to expose the inner error")
	}

	err = &Error{Op: "detect", Err: inner}
	if err.Error() != "detect: boom" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
