package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/restcontract/posts-contract-tests/client"
	"github.com/restcontract/posts-contract-tests/framework"
)

type commandParams struct {
	serviceURL string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", client.DefaultBaseURL, "base URL of the service under test")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url must not be empty")
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that reruns exactly the given failed
// tests. A pattern is emitted for every ancestor of a failed subtest as well,
// since the filter is applied at each level of the test tree.
func rerunCommand(program string, params commandParams, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program, "-url", params.serviceURL)
	if params.debug || params.debugAll {
		b.add("-debug")
	}
	seen := make(map[string]bool)
	for _, f := range failures {
		for i := 1; i <= len(f.TestID.Path); i++ {
			name := framework.TestID{Path: f.TestID.Path[:i]}.String()
			if seen[name] {
				continue
			}
			seen[name] = true
			b.add("-run", "^"+regexp.QuoteMeta(name)+"$")
		}
	}
	return b.String()
}
