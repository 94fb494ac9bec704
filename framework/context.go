package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a test or subtest in progress. It implements the methods that
// the assert and require packages need (Errorf and FailNow), so assertions can be
// made against it as if it were a *testing.T.
type Context struct {
	env         *environment
	id          TestID
	root        bool
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
}

// Run executes a whole test run. The action function receives the root Context and
// is expected to call Context.Run for each top-level test.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env, root: true}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		r := recover()
		c.runCleanups()
		if r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// this is the controlled panic from FailNow
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		if c.root && !c.failed {
			// the root context only dispatches subtests; it is not itself a test
			return
		}
		result := TestResult{TestID: c.id, Errors: c.errors}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) runCleanups() {
	cleanups := c.cleanups
	c.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf logs a test failure without terminating the test. Assertions from the
// assert package call this.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// FailNow terminates the test immediately. Assertions from the require package
// call this after Errorf.
func (c *Context) FailNow() {
	panic(c)
}

// Skip terminates the test immediately without marking it as failed.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to run when this test finishes, in
// last-in-first-out order, like a defer statement but scoped to the test rather
// than to a function. Cleanups run even if the test fails or panics.
func (c *Context) Defer(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError cleans up the multi-line messages produced by testify assertions
// so they indent sensibly in console output.
func reformatError(err error) error {
	lines := strings.Split(strings.TrimLeft(err.Error(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return errors.New(strings.Join(lines, "\n"))
}
