package posttests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restcontract/posts-contract-tests/client"
	"github.com/restcontract/posts-contract-tests/framework"
)

func TestNewPostParamsGeneratesFreshValidPayloads(t *testing.T) {
	var first, second client.PostParams
	framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("generate", func(c *framework.Context) {
			scope := newTestScope(c, nil)
			first = scope.NewPostParams()
			second = scope.NewPostParams()
		})
	})

	assert.NotEmpty(t, first.Title)
	assert.NotEmpty(t, first.Body)
	assert.Equal(t, 1, first.UserID)
	assert.NotEqual(t, first.Title, second.Title, "payloads should be randomized per invocation")
}

func TestRequirePostShapeAcceptsCompleteRecord(t *testing.T) {
	doc := ldvalue.ObjectBuild().
		Set("id", ldvalue.Int(3)).
		Set("title", ldvalue.String("a title")).
		Set("body", ldvalue.String("a body")).
		Set("userId", ldvalue.Int(2)).
		Build()

	results := framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("shape", func(c *framework.Context) {
			requirePostShape(newTestScope(c, nil), doc, "record")
		})
	})
	assert.True(t, results.OK())
}

func TestRequirePostShapeFlagsViolations(t *testing.T) {
	badDocs := map[string]ldvalue.Value{
		"not an object": ldvalue.String("nope"),
		"missing id": ldvalue.ObjectBuild().
			Set("title", ldvalue.String("t")).
			Set("body", ldvalue.String("b")).
			Set("userId", ldvalue.Int(1)).
			Build(),
		"empty title": ldvalue.ObjectBuild().
			Set("id", ldvalue.Int(1)).
			Set("title", ldvalue.String("")).
			Set("body", ldvalue.String("b")).
			Set("userId", ldvalue.Int(1)).
			Build(),
		"non-numeric userId": ldvalue.ObjectBuild().
			Set("id", ldvalue.Int(1)).
			Set("title", ldvalue.String("t")).
			Set("body", ldvalue.String("b")).
			Set("userId", ldvalue.String("1")).
			Build(),
	}

	for name, doc := range badDocs {
		doc := doc
		results := framework.Run(nil, nil, func(c *framework.Context) {
			c.Run("shape", func(c *framework.Context) {
				requirePostShape(newTestScope(c, nil), doc, "record")
			})
		})
		require.False(t, results.OK(), "document %q should have been rejected", name)
	}
}
