package internal

import (
	"io/ioutil"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var expectPattern = regexp.MustCompile(`// expect: (.*)`)

// TestScripts runs every testdata/*.eve script and compares what it prints
// with its "// expect: " comments, in order
func TestScripts(t *testing.T) {
	scripts, err := filepath.Glob(filepath.Join("testdata", "*.eve"))
	if err != nil {
		t.Fatal(err)
	}
	if len(scripts) == 0 {
		t.Fatal("no scripts found in testdata")
	}

	for _, script := range scripts {
		script := script
		t.Run(filepath.Base(script), func(t *testing.T) {
			b, err := ioutil.ReadFile(script)
			if err != nil {
				t.Fatal(err)
			}
			source := string(b)

			var expected []string
			for _, m := range expectPattern.FindAllStringSubmatch(source, -1) {
				expected = append(expected, m[1])
			}

			tp := &testPrinter{}
			if _, err := runWithPrinter(source, tp); err != nil {
				t.Fatal(err)
			}
			actual := strings.Split(strings.TrimSuffix(tp.printed, "\n"), "\n")

			for i, exp := range expected {
				if i >= len(actual) {
					t.Errorf("expected %s, found nothing", exp)
					continue
				}
				if actual[i] != exp {
					t.Errorf("line %d: expected %s, found %s", i+1, exp, actual[i])
				}
			}
			if len(actual) > len(expected) {
				t.Errorf("unexpected output: %q", actual[len(expected):])
			}
		})
	}
}
