package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/restcontract/posts-contract-tests/framework"
)

var (
	failedColor  = color.New(color.FgRed, color.Bold)
	skippedColor = color.New(color.FgYellow)
)

// ConsoleTestLogger prints test progress as the run goes along. Captured debug
// output is shown after a test finishes, depending on the debug flags.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		failedColor.Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skippedColor.Printf("  SKIPPED: %s\n", id)
	} else {
		skippedColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}
