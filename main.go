package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/restcontract/posts-contract-tests/client"
	"github.com/restcontract/posts-contract-tests/framework"
	"github.com/restcontract/posts-contract-tests/posttests"
)

const startupTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	resourceClient, err := client.NewResourceClient(params.serviceURL, startupTimeout, mainDebugLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
		os.Exit(1)
	}
	defer resourceClient.Close()

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running test suite against %s\n", resourceClient.BaseURL())

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := posttests.RunTestSuite(resourceClient, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To run only the failed tests again:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results.Failures))
		os.Exit(1)
	}
}
