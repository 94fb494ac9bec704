package posttests

import (
	"math"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type createEdgeCase struct {
	name    string
	payload ldvalue.Value
}

func simplePostPayload(title, body string, userID int) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("title", ldvalue.String(title)).
		Set("body", ldvalue.String(body)).
		Set("userId", ldvalue.Int(userID)).
		Build()
}

func createEdgeCases() []createEdgeCase {
	return []createEdgeCase{
		{"valid complete", simplePostPayload("Valid Title", "Valid body", 1)},
		{"long fields", simplePostPayload(strings.Repeat("X", 1000), strings.Repeat("X", 5000), 1)},
		{"unicode", simplePostPayload("Title with unicode: 😊", "Body with unicode: ñáéíóú", 1)},
		{"surrounding whitespace", simplePostPayload("  Keep me  ", "  Keep me too  ", 1)},
		{"one-char title", simplePostPayload("a", "Valid body", 1)},
		{"255-char title", simplePostPayload(strings.Repeat("X", 255), "Valid body", 1)},
		{"one-char body", simplePostPayload("Valid title", "a", 1)},
		{"minimum userId", simplePostPayload("Valid title", "Valid body", 1)},
		{"maximum userId", simplePostPayload("Valid title", "Valid body", math.MaxInt32)},
		{"empty title", simplePostPayload("", "Empty title", 1)},
		{"whitespace title", simplePostPayload("   ", "Whitespace title", 1)},
		{"missing body", ldvalue.ObjectBuild().
			Set("title", ldvalue.String("No body")).
			Set("userId", ldvalue.Int(1)).
			Build()},
		{"missing title", ldvalue.ObjectBuild().
			Set("body", ldvalue.String("No title")).
			Set("userId", ldvalue.Int(1)).
			Build()},
		{"missing userId", ldvalue.ObjectBuild().
			Set("title", ldvalue.String("No user")).
			Set("body", ldvalue.String("No user ID")).
			Build()},
		{"null title", ldvalue.ObjectBuild().
			Set("title", ldvalue.Null()).
			Set("body", ldvalue.String("Null title")).
			Set("userId", ldvalue.Int(1)).
			Build()},
		{"null body", ldvalue.ObjectBuild().
			Set("title", ldvalue.String("Null body")).
			Set("body", ldvalue.Null()).
			Set("userId", ldvalue.Int(1)).
			Build()},
		{"null userId", ldvalue.ObjectBuild().
			Set("title", ldvalue.String("Null user")).
			Set("body", ldvalue.String("Null user ID")).
			Set("userId", ldvalue.Null()).
			Build()},
		{"wrong types", ldvalue.ObjectBuild().
			Set("title", ldvalue.Int(123)).
			Set("body", ldvalue.Int(456)).
			Set("userId", ldvalue.String("1")).
			Build()},
		{"nested structures", ldvalue.ObjectBuild().
			Set("title", ldvalue.ObjectBuild().Set("nested", ldvalue.String("object")).Build()).
			Set("body", ldvalue.ArrayOf(ldvalue.String("array"))).
			Set("userId", ldvalue.Int(1)).
			Build()},
	}
}

// DoCreateEdgeCaseTests verifies creation with valid-but-extreme payloads (all
// accepted, echoing every sent field and substituting defaults for missing or
// null ones) and with malformed bodies (rejected with 400).
func DoCreateEdgeCaseTests(t *T) {
	for _, tc := range createEdgeCases() {
		tc := tc
		t.Run(tc.name, func(t *T) {
			resp := t.CreatePost([]byte(tc.payload.JSONString()), "")
			t.AssertWriteLatency(resp)
			require.Equal(t, http.StatusCreated, resp.StatusCode)

			result := t.RequireJSONValue(resp)
			require.Equal(t, ldvalue.ObjectType, result.Type())
			assert.Equal(t, ldvalue.NumberType, result.GetByKey("id").Type(),
				"response should contain a generated id")

			for _, key := range tc.payload.Keys() {
				sent := tc.payload.GetByKey(key)
				if sent.IsNull() {
					continue
				}
				got := result.GetByKey(key)
				assert.True(t, sent.Equal(got),
					"field %q should be echoed: sent %s, got %s", key, sent, got)
			}

			for _, field := range []string{"title", "body"} {
				if tc.payload.GetByKey(field).IsNull() {
					assert.Equal(t, ldvalue.String(""), result.GetByKey(field),
						"missing or null %s should default to an empty string", field)
				}
			}
			if tc.payload.GetByKey("userId").IsNull() {
				assert.True(t, ldvalue.Int(1).Equal(result.GetByKey("userId")),
					"missing or null userId should default to 1, got %s", result.GetByKey("userId"))
			}
		})
	}

	t.Run("non-JSON body", func(t *T) {
		resp := t.CreatePost([]byte("not a json"), "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty body", func(t *T) {
		resp := t.CreatePost(nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
