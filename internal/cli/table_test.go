// internal/cli/table_test.go
package cli

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Package", "Status"},
		[][]string{{"numpy", "ok"}, {"pyqt5"}},
	)
	if !strings.Contains(out, "PACKAGE") {
		t.Fatalf("expected header in output:\n%s", out)
	}
	if !strings.Contains(out, "numpy") || !strings.Contains(out, "pyqt5") {
		t.Fatalf("expected rows in output:\n%s", out)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestExitCodeError(t *testing.T) {
	err := &exitCodeError{code: 2}
	if err.Error() != "exit code 2" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
