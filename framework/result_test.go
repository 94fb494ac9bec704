package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResultsWhenAllPassed(t *testing.T) {
	results := Results{
		Tests: []TestResult{
			{TestID: TestID{Path: []string{"one"}}},
			{TestID: TestID{Path: []string{"two"}}},
		},
	}

	var buf bytes.Buffer
	PrintResults(&buf, results)
	assert.Equal(t, "All tests passed (2 total)\n", buf.String())
}

func TestPrintResultsListsFailuresWithErrors(t *testing.T) {
	failure := TestResult{
		TestID: TestID{Path: []string{"group", "case"}},
		Errors: []error{errors.New("first problem\nwith detail"), errors.New("second problem")},
	}
	results := Results{
		Tests:    []TestResult{{TestID: TestID{Path: []string{"ok"}}}, failure},
		Failures: []TestResult{failure},
	}

	var buf bytes.Buffer
	PrintResults(&buf, results)
	out := buf.String()
	assert.Contains(t, out, "FAILED TESTS (1 of 2):")
	assert.Contains(t, out, "  * group/case\n")
	assert.Contains(t, out, "      first problem\n")
	assert.Contains(t, out, "      with detail\n")
	assert.Contains(t, out, "      second problem\n")
}
