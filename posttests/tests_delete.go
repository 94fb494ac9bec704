package posttests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoDeleteTests verifies deleting a known record: 200 with an empty-object
// body, 404 on a subsequent read, and an idempotent second delete.
func DoDeleteTests(t *T) {
	knownID := t.KnownPostID()

	pre := t.GetPost(knownID)
	require.Equal(t, http.StatusOK, pre.StatusCode, "record should exist before deletion")

	resp := t.DeletePost(knownID)
	t.AssertWriteLatency(resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "{}", string(resp.Body), "successful delete should return an empty object")

	reread := t.GetPost(knownID)
	assert.Equal(t, http.StatusNotFound, reread.StatusCode, "deleted record should no longer be readable")

	again := t.DeletePost(knownID)
	assert.Contains(t, []int{http.StatusOK, http.StatusNotFound}, again.StatusCode,
		"repeating a delete should yield 200 or 404, got %d", again.StatusCode)
}
