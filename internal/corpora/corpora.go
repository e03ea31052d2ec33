// Package corpora runs table-driven tests where the table lives in the file
// system: every input file under a directory is a test case, and its expected
// outputs sit next to it with an extra extension.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jsgen-dev/jsgen/internal/test"
)

type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// "Run"
	Root string

	// An environment variable holding a glob. Test cases whose name matches
	// the glob have their output files rewritten instead of compared.
	Refresh string

	// The extension (without a dot) of the files which define a test case,
	// e.g. "yaml"
	Extension string

	// Expected outputs are found by appending "." + extension to the test
	// case's path. A missing output file means the output is expected to be
	// empty.
	Outputs []string

	// Runs one test case and returns one string per entry in "Outputs"
	Test func(t *testing.T, path string, text string) []string
}

func (c Corpus) Run(t *testing.T) {
	t.Helper()
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking test data:", err)
	}
	sort.Strings(tests)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range tests {
		name, _ := filepath.Rel(testDir, path)
		path := path
		t.Run(filepath.ToSlash(name), func(t *testing.T) {
			bytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}
			results := c.Test(t, name, string(bytes))

			matched := false
			if refresh != "" {
				matched, _ = doublestar.Match(refresh, filepath.ToSlash(name))
			}
			for i, ext := range c.Outputs {
				outPath := fmt.Sprint(path, ".", ext)

				if matched {
					if results[i] == "" {
						if err := os.Remove(outPath); err != nil && !errors.Is(err, os.ErrNotExist) {
							t.Errorf("corpora: error while deleting output file %q: %v", outPath, err)
						}
					} else if err := os.WriteFile(outPath, []byte(results[i]), 0644); err != nil {
						t.Errorf("corpora: error while writing output file %q: %v", outPath, err)
					}
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", outPath, err)
					continue
				}
				if diff := test.Diff(string(want), results[i], false); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, diff)
				}
			}
		})
	}
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
