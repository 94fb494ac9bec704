package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/restcontract/posts-contract-tests/framework"
)

// DefaultBaseURL is the service this harness was written against. Any service
// implementing the same contract can be substituted with the -url flag.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const postsPath = "/posts"

// Latency ceilings that the contract tests assert against. These are soft
// expectations of the service under test: elapsed time is measured after the
// fact and a slow response fails an assertion rather than aborting the request.
const (
	ReadLatencyLimit  = 1000 * time.Millisecond
	WriteLatencyLimit = 2000 * time.Millisecond
)

// hardTimeout only guards against a hung service wedging the whole run; it is
// deliberately far above any latency ceiling so it never masks a slow response.
const hardTimeout = 30 * time.Second

// ResourceClient is the single HTTP client shared by a whole test run. Every
// request it sends carries JSON Content-Type and Accept headers unless a test
// overrides them, and connections are reused until Close is called.
type ResourceClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// NewResourceClient creates a ResourceClient and verifies that the service under
// test is responding, by polling a read of a known resource until it succeeds or
// the timeout elapses.
func NewResourceClient(baseURL string, startupTimeout time.Duration, logger framework.Logger) (*ResourceClient, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c := &ResourceClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: hardTimeout},
		logger:     logger,
	}

	deadline := time.Now().Add(startupTimeout)
	for {
		logger.Printf("Checking that the service is reachable at %s", c.baseURL)
		resp, err := c.GetPost(1)
		if err == nil && resp.StatusCode == http.StatusOK {
			return c, nil
		}
		if !time.Now().Before(deadline) {
			if err == nil {
				err = fmt.Errorf("status code %d", resp.StatusCode)
			}
			return nil, fmt.Errorf("service at %s is not responding: %w", c.baseURL, err)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Close releases the connections held open for reuse. The client must not be
// used after Close.
func (c *ResourceClient) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *ResourceClient) BaseURL() string {
	return c.baseURL
}

// Response is the outcome of one request: everything a contract assertion might
// need, including the wall-clock time the round trip took.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Elapsed    time.Duration
}

// HasJSONContentType reports whether the response declared a JSON body,
// tolerating charset parameters.
func (r Response) HasJSONContentType() bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// Do sends one request and reads the whole response. The path is appended to the
// base URL as given. Headers given here override the default JSON headers; a nil
// value in extraHeaders removes the default instead.
func (c *ResourceClient) Do(method, path string, body []byte, extraHeaders http.Header) (Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for name, values := range extraHeaders {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	c.logger.Printf("%s %s", method, path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	c.logger.Printf("%s %s -> %d in %dms", method, path, resp.StatusCode, elapsed.Milliseconds())

	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Elapsed:    elapsed,
	}, nil
}

// GetPosts reads the whole collection.
func (c *ResourceClient) GetPosts() (Response, error) {
	return c.Do(http.MethodGet, postsPath, nil, nil)
}

// GetPost reads a single resource by id.
func (c *ResourceClient) GetPost(id int) (Response, error) {
	return c.Do(http.MethodGet, postPath(id), nil, nil)
}

// GetPostConditional reads a single resource with an If-None-Match validator.
func (c *ResourceClient) GetPostConditional(id int, etag string) (Response, error) {
	headers := make(http.Header)
	headers.Set("If-None-Match", etag)
	return c.Do(http.MethodGet, postPath(id), nil, headers)
}

// HeadPost requests only the headers of a single resource.
func (c *ResourceClient) HeadPost(id int) (Response, error) {
	return c.Do(http.MethodHead, postPath(id), nil, nil)
}

// CreatePost posts a new resource body as given, optionally overriding the
// Content-Type header (pass "" to keep the default).
func (c *ResourceClient) CreatePost(body []byte, contentType string) (Response, error) {
	var headers http.Header
	if contentType != "" {
		headers = make(http.Header)
		headers.Set("Content-Type", contentType)
	}
	return c.Do(http.MethodPost, postsPath, body, headers)
}

// UpdatePost replaces a resource by id with the body as given.
func (c *ResourceClient) UpdatePost(id int, body []byte) (Response, error) {
	return c.Do(http.MethodPut, postPath(id), body, nil)
}

// DeletePost deletes a resource by id.
func (c *ResourceClient) DeletePost(id int) (Response, error) {
	return c.Do(http.MethodDelete, postPath(id), nil, nil)
}

// PostPathFor builds the item path for an arbitrary, possibly malformed
// identifier string. The identifier is sent as given (URL-escaped only as far as
// net/url requires), since malformed identifiers are part of the contract
// being tested.
func PostPathFor(rawID string) string {
	return postsPath + "/" + rawID
}

func postPath(id int) string {
	return PostPathFor(strconv.Itoa(id))
}
