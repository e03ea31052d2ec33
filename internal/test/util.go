package test

import (
	"os"
	"testing"

	"github.com/jsgen-dev/jsgen/internal/logger"
)

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("%v != %v", a, b)
	}
}

func AssertEqualWithDiff(t *testing.T, a string, b string) {
	t.Helper()
	if a != b {
		stderr := logger.GetTerminalInfo(os.Stderr)
		t.Fatal("\n" + Diff(b, a, stderr.UseColorEscapes))
	}
}
