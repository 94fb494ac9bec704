package posttests

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoCreateTests verifies creating a resource: 201 with the sent fields echoed
// back plus a generated id, retrievability of the new record, and tolerance of
// charset parameters on the request content type.
func DoCreateTests(t *T) {
	params := t.NewPostParams()

	resp := t.CreatePost(params.Marshal(), "")
	t.AssertWriteLatency(resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	t.AssertJSONContentType(resp)

	created := t.RequirePost(resp)
	assert.Equal(t, params.Title, created.Title, "created record should echo the sent title")
	assert.Equal(t, params.Body, created.Body, "created record should echo the sent body")
	assert.Equal(t, params.UserID, created.UserID, "created record should echo the sent userId")
	require.NotZero(t, created.ID, "created record should have a generated id")

	reread := t.GetPost(created.ID)
	assert.Equal(t, http.StatusOK, reread.StatusCode, "newly created record should be retrievable")

	contentTypes := []string{
		"application/json",
		"application/json; charset=utf-8",
		"application/json;charset=UTF-8",
	}
	for _, contentType := range contentTypes {
		contentType := contentType
		t.Run(fmt.Sprintf("content type %q", contentType), func(t *T) {
			resp := t.CreatePost(t.NewPostParams().Marshal(), contentType)
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
		})
	}
}
