package posttests

import (
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/restcontract/posts-contract-tests/client"
)

var invalidIdentifiers = []struct {
	name string
	id   string
}{
	{"zero", "0"},
	{"negative", "-1"},
	{"non-existent", "999999"},
	{"string", "invalid"},
	{"float string", "1.5"},
	{"alphanumeric", "1a"},
	{"whitespace", " "},
	{"empty", ""},
	{"null string", "null"},
	{"undefined string", "undefined"},
	{"script injection", "<script>alert(1)</script>"},
	{"sql injection", "1; DROP TABLE posts"},
	{"very long", strings.Repeat("1", 1000)},
}

// DoInvalidIdentifierTests verifies that boundary and malformed identifiers are
// rejected with 404 across every supported verb. A 405 is also acceptable for
// write verbs, where a service may reject the method before resolving the path.
func DoInvalidIdentifierTests(t *T) {
	for _, tc := range invalidIdentifiers {
		tc := tc
		t.Run(tc.name, func(t *T) {
			for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete} {
				var body []byte
				if method == http.MethodPut {
					// keep the request body well-formed so the rejection
					// is about the identifier, not the payload
					body = []byte("{}")
				}
				resp := t.Request(method, client.PostPathFor(tc.id), body)
				assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, resp.StatusCode,
					"unexpected status %d for %s with identifier %q", resp.StatusCode, method, tc.id)
			}
		})
	}
}
