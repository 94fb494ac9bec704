package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRegexList(t *testing.T, patterns ...string) RegexList {
	var list RegexList
	for _, p := range patterns {
		require.NoError(t, list.Set(p))
	}
	return list
}

func TestRegexListSetRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
	assert.False(t, list.IsDefined())
}

func TestRegexListAnyMatch(t *testing.T) {
	list := makeRegexList(t, "^create", "delete$")
	assert.True(t, list.AnyMatch("create post"))
	assert.True(t, list.AnyMatch("idempotent delete"))
	assert.False(t, list.AnyMatch("update post"))
}

func TestRegexFiltersWithNoPatternsRunEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter(TestID{Path: []string{"anything"}}))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	filters := RegexFilters{MustMatch: makeRegexList(t, "update")}
	assert.True(t, filters.AsFilter(TestID{Path: []string{"update post", "partial"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"delete post"}}))
}

func TestRegexFiltersMustNotMatchWinsOverMustMatch(t *testing.T) {
	filters := RegexFilters{
		MustMatch:    makeRegexList(t, "post"),
		MustNotMatch: makeRegexList(t, "edge cases"),
	}
	assert.True(t, filters.AsFilter(TestID{Path: []string{"create post"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"create post", "edge cases"}}))
}
