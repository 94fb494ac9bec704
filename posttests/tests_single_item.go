package posttests

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoSingleItemTests verifies reading a single resource: cache validator headers,
// conditional-request support, content type, and field conformance.
func DoSingleItemTests(t *T) {
	for _, id := range []int{1, 5, 10} {
		id := id
		t.Run(fmt.Sprintf("id %d", id), func(t *T) {
			head := t.HeadPost(id)
			etag := head.Header.Get("ETag")
			lastModified := head.Header.Get("Last-Modified")
			assert.True(t, etag != "" || lastModified != "",
				"response should include an ETag or Last-Modified cache validator")

			if etag != "" {
				conditional := t.GetPostConditional(id, etag)
				assert.Equal(t, http.StatusNotModified, conditional.StatusCode,
					"conditional request with a matching ETag should yield 304")
			}

			resp := t.GetPost(id)
			t.AssertReadLatency(resp)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			t.AssertJSONContentType(resp)

			v := t.RequireJSONValue(resp)
			requirePostShape(t, v, "resource record")
			assert.Equal(t, id, v.GetByKey("id").IntValue(), "record should have the requested id")
		})
	}
}
