// Package posttests contains the contract test suite for the /posts resource.
package posttests
