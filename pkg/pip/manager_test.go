// pkg/pip/manager_test.go
package pip

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyready/pyready/pkg/core"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "python3")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func captureArgs(t *testing.T, captured *[]string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		*captured = append([]string{name}, args...)
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestInstallBuildsExpectedArgs(t *testing.T) {
	var captured []string
	captureArgs(t, &captured)

	m := NewPackageManager(&Config{
		Python:   "python3",
		IndexURL: "https://mirror.example/simple",
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	})

	opts := &core.InstallOptions{Version: "1.26.4", Upgrade: true, Quiet: true}
	if err := m.Install(context.Background(), "numpy", opts); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}

	want := []string{
		"python3", "-m", "pip", "install", "--upgrade", "--quiet",
		"--index-url", "https://mirror.example/simple", "numpy==1.26.4",
	}
	if len(captured) != len(want) {
		t.Fatalf("expected args %v, got %v", want, captured)
	}
	for i := range want {
		if captured[i] != want[i] {
			t.Fatalf("arg %d: expected %q, got %q", i, want[i], captured[i])
		}
	}
}

func TestInstallRequiresPackageName(t *testing.T) {
	m := NewPackageManager(&Config{Python: "python3"})
	if err := m.Install(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty package name")
	}
}

func TestInstallFailureKeepsStderrDetail(t *testing.T) {
	stub := writeStub(t, `#!/bin/sh
echo "Collecting nosuchpkg"
echo "ERROR: No matching distribution found for nosuchpkg" >&2
exit 1
`)
	m := NewPackageManager(&Config{Python: stub, Stdout: io.Discard, Stderr: io.Discard})

	err := m.Install(context.Background(), "nosuchpkg", nil)
	if !errors.Is(err, core.ErrInstallFailed) {
		t.Fatalf("expected ErrInstallFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "No matching distribution") {
		t.Fatalf("expected stderr detail in error, got %v", err)
	}
}

func TestIsAvailable(t *testing.T) {
	m := NewPackageManager(&Config{})
	if m.IsAvailable() {
		t.Fatal("expected unavailable without an interpreter")
	}

	ok := writeStub(t, "#!/bin/sh\nexit 0\n")
	if !NewPackageManager(&Config{Python: ok}).IsAvailable() {
		t.Fatal("expected available when -m pip succeeds")
	}

	bad := writeStub(t, "#!/bin/sh\nexit 1\n")
	if NewPackageManager(&Config{Python: bad}).IsAvailable() {
		t.Fatal("expected unavailable when -m pip fails")
	}
}

func TestListParsesJSON(t *testing.T) {
	stub := writeStub(t, `#!/bin/sh
echo '[{"name":"numpy","version":"1.26.4"},{"name":"openpyxl","version":"3.1.2"}]'
`)
	m := NewPackageManager(&Config{Python: stub})

	packages, err := m.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(packages) != 2 {
		t.Fatalf("expected two packages, got %d", len(packages))
	}
	if packages[0].Name != "numpy" || packages[0].Version != "1.26.4" {
		t.Fatalf("unexpected first package: %#v", packages[0])
	}
	if packages[1].Backend != "pip" {
		t.Fatalf("expected pip backend, got %q", packages[1].Backend)
	}
}

func TestName(t *testing.T) {
	if got := NewPackageManager(nil).Name(); got != "pip" {
		t.Fatalf("expected pip, got %q", got)
	}
}

func TestLastLine(t *testing.T) {
	if got := lastLine("a\nb\n\n"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := lastLine(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
