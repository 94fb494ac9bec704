package framework

import (
	"fmt"
	"io"
	"strings"
)

// TestID identifies a test or subtest by its path of names from the root of the suite.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestResult describes the outcome of a single test. A test with no Errors passed.
type TestResult struct {
	TestID TestID
	Errors []error
}

// Results accumulates the outcomes of every test that was run. Skipped tests are
// not included.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// PrintResults writes a summary of the test run to the given writer.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(w, "All tests passed (%d total)\n", len(results.Tests))
		return
	}

	fmt.Fprintf(w, "FAILED TESTS (%d of %d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  * %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(w, "      %s\n", line)
			}
		}
	}
}
