// Package framework contains the test-run machinery for the contract test harness,
// independent of what is being tested.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results. Test assertions from the assert and require
// packages work against it.
//
// 2. Tests are arranged in a tree of named subtests. Regex filters given on the
// command line select which subtests run.
//
// 3. Each test can write debug output describing the HTTP traffic it generated;
// that output is captured and handed to the test logger when the test ends, so it
// can be shown for failed tests only (or for all tests, if requested).
package framework
