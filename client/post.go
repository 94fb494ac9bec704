package client

import (
	"encoding/json"
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Post is the resource record owned by the service under test.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// PostParams is the writable subset of Post, used as the request body for create
// and update operations.
type PostParams struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

func (p PostParams) Marshal() []byte {
	data, err := json.Marshal(p)
	if err != nil {
		// a struct of strings and ints cannot fail to marshal
		panic(err)
	}
	return data
}

// Post decodes the response body as a single resource record.
func (r Response) Post() (Post, error) {
	var post Post
	if err := json.Unmarshal(r.Body, &post); err != nil {
		return Post{}, fmt.Errorf("malformed resource record %q: %w", string(r.Body), err)
	}
	return post, nil
}

// Posts decodes the response body as a collection of resource records.
func (r Response) Posts() ([]Post, error) {
	var posts []Post
	if err := json.Unmarshal(r.Body, &posts); err != nil {
		return nil, fmt.Errorf("malformed resource collection: %w", err)
	}
	return posts, nil
}

// JSONValue parses the response body as an arbitrary JSON value, for tests that
// assert on the shape and types of the document rather than decoding it into a
// known struct.
func (r Response) JSONValue() (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return ldvalue.Null(), fmt.Errorf("response body is not valid JSON: %q", string(r.Body))
	}
	return v, nil
}
