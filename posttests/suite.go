package posttests

import (
	"github.com/restcontract/posts-contract-tests/client"
	"github.com/restcontract/posts-contract-tests/framework"
)

// RunTestSuite runs every contract test against the service that the given
// client points at, returning the accumulated results.
func RunTestSuite(
	resourceClient *client.ResourceClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, resourceClient)

		t.Run("get all posts", DoCollectionTests)
		t.Run("get single post", DoSingleItemTests)
		t.Run("create post", DoCreateTests)
		t.Run("update post", DoUpdateTests)
		t.Run("delete post", DoDeleteTests)
		t.Run("invalid post identifiers", DoInvalidIdentifierTests)
		t.Run("create post edge cases", DoCreateEdgeCaseTests)
	})
}
