package posttests

import (
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restcontract/posts-contract-tests/client"
	"github.com/restcontract/posts-contract-tests/framework"
)

// knownResourceID is the identifier the suite relies on existing in the service
// before the run starts; the startup probe reads the same record.
const knownResourceID = 1

// T represents a test or subtest in the contract test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner. To make test assertions,
// use the assert and require packages, passing the *T as if it were a
// *testing.T.
//
// It also carries the fixtures the tests need: the shared HTTP client for the
// whole run, a generator for randomized but syntactically valid payloads, and a
// lookup for a known-valid resource identifier. Request helpers fail the test
// immediately on transport errors, so tests only deal with contract assertions.
type T struct {
	context *framework.Context
	client  *client.ResourceClient
}

func newTestScope(context *framework.Context, resourceClient *client.ResourceClient) *T {
	return &T{context: context, client: resourceClient}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit.
// The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.client))
	})
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Defer schedules cleanup to run when the test finishes.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// NewPostParams generates a randomized, syntactically valid payload for creating
// a resource. A fresh payload is generated on every call.
func (t *T) NewPostParams() client.PostParams {
	return client.PostParams{
		Title:  gofakeit.Sentence(5),
		Body:   gofakeit.Paragraph(1, 3, 10, " "),
		UserID: 1,
	}
}

// KnownPostID reads a known resource and returns its identifier, for tests that
// need a record that already exists. The test fails immediately if the read does
// not succeed.
func (t *T) KnownPostID() int {
	resp := t.GetPost(knownResourceID)
	require.Equal(t, http.StatusOK, resp.StatusCode, "known resource read failed")
	post, err := resp.Post()
	require.NoError(t, err)
	return post.ID
}

func (t *T) must(resp client.Response, err error) client.Response {
	require.NoError(t, err, "request failed before the service could answer")
	t.Debug("-> %d in %dms: %s", resp.StatusCode, resp.Elapsed.Milliseconds(), truncateForLog(resp.Body))
	return resp
}

func truncateForLog(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

// GetPosts reads the whole collection, failing the test on transport errors.
func (t *T) GetPosts() client.Response {
	resp, err := t.client.GetPosts()
	return t.must(resp, err)
}

func (t *T) GetPost(id int) client.Response {
	resp, err := t.client.GetPost(id)
	return t.must(resp, err)
}

func (t *T) GetPostConditional(id int, etag string) client.Response {
	resp, err := t.client.GetPostConditional(id, etag)
	return t.must(resp, err)
}

func (t *T) HeadPost(id int) client.Response {
	resp, err := t.client.HeadPost(id)
	return t.must(resp, err)
}

func (t *T) CreatePost(body []byte, contentType string) client.Response {
	resp, err := t.client.CreatePost(body, contentType)
	return t.must(resp, err)
}

func (t *T) UpdatePost(id int, body []byte) client.Response {
	resp, err := t.client.UpdatePost(id, body)
	return t.must(resp, err)
}

func (t *T) DeletePost(id int) client.Response {
	resp, err := t.client.DeletePost(id)
	return t.must(resp, err)
}

// Request sends an arbitrary verb and path, for the identifier matrices.
func (t *T) Request(method, path string, body []byte) client.Response {
	resp, err := t.client.Do(method, path, body, nil)
	return t.must(resp, err)
}

// RequirePost decodes the response body as a resource record, failing the test
// immediately if it does not parse.
func (t *T) RequirePost(resp client.Response) client.Post {
	post, err := resp.Post()
	require.NoError(t, err)
	return post
}

// RequireJSONValue parses the response body as arbitrary JSON, failing the test
// immediately if it is not valid JSON.
func (t *T) RequireJSONValue(resp client.Response) ldvalue.Value {
	v, err := resp.JSONValue()
	require.NoError(t, err)
	return v
}

// AssertReadLatency flags a read that exceeded its latency ceiling. The response
// already completed, so this never aborts the test by itself.
func (t *T) AssertReadLatency(resp client.Response) {
	assert.LessOrEqual(t, resp.Elapsed, client.ReadLatencyLimit,
		"read took %dms, expected under %dms", resp.Elapsed.Milliseconds(), client.ReadLatencyLimit.Milliseconds())
}

// AssertWriteLatency flags a write that exceeded its latency ceiling.
func (t *T) AssertWriteLatency(resp client.Response) {
	assert.LessOrEqual(t, resp.Elapsed, client.WriteLatencyLimit,
		"write took %dms, expected under %dms", resp.Elapsed.Milliseconds(), client.WriteLatencyLimit.Milliseconds())
}

// AssertJSONContentType flags a response that did not declare a JSON body.
func (t *T) AssertJSONContentType(resp client.Response) {
	assert.True(t, resp.HasJSONContentType(),
		"expected a JSON content type, got %q", resp.Header.Get("Content-Type"))
}

// requirePostShape verifies that a JSON document has the complete resource
// record shape: integer positive id, non-empty title and body strings, positive
// integer userId. It fails the test immediately on a structural mismatch, since
// later assertions on the same document would only add noise.
func requirePostShape(t *T, v ldvalue.Value, desc string) {
	require.Equal(t, ldvalue.ObjectType, v.Type(), "%s: expected a JSON object, got %s", desc, v.JSONString())

	id := v.GetByKey("id")
	require.Equal(t, ldvalue.NumberType, id.Type(), "%s: id is missing or not a number", desc)
	assert.Equal(t, id.Float64Value(), float64(id.IntValue()), "%s: id is not an integer", desc)
	assert.Greater(t, id.IntValue(), 0, "%s: id should be a positive integer", desc)

	title := v.GetByKey("title")
	require.Equal(t, ldvalue.StringType, title.Type(), "%s: title is missing or not a string", desc)
	assert.NotEmpty(t, title.StringValue(), "%s: title should not be empty", desc)

	body := v.GetByKey("body")
	require.Equal(t, ldvalue.StringType, body.Type(), "%s: body is missing or not a string", desc)
	assert.NotEmpty(t, body.StringValue(), "%s: body should not be empty", desc)

	userID := v.GetByKey("userId")
	require.Equal(t, ldvalue.NumberType, userID.Type(), "%s: userId is missing or not a number", desc)
	assert.Greater(t, userID.IntValue(), 0, "%s: userId should be a positive integer", desc)
}
