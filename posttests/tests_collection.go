package posttests

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoCollectionTests verifies reading the whole collection: a JSON list where
// every element is a complete, well-typed resource record.
func DoCollectionTests(t *T) {
	resp := t.GetPosts()
	t.AssertReadLatency(resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	v := t.RequireJSONValue(resp)
	require.Equal(t, ldvalue.ArrayType, v.Type(), "collection response should be a JSON list")
	require.NotZero(t, v.Count(), "collection should not be empty")

	for i := 0; i < v.Count(); i++ {
		requirePostShape(t, v.GetByIndex(i), fmt.Sprintf("element %d", i))
	}
}
