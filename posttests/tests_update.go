package posttests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restcontract/posts-contract-tests/client"
)

type updateScenario struct {
	name     string
	newTitle string
	newBody  string // empty means the scenario does not change the body
}

// DoUpdateTests verifies replacing a known record. Each scenario changes a
// different subset of fields, always sending the full merged document; the
// changed fields must be echoed in the response and persist on a re-read, while
// unchanged fields keep their previous values.
func DoUpdateTests(t *T) {
	knownID := t.KnownPostID()

	now := func() string { return time.Now().UTC().Format(time.RFC3339) }
	scenarios := []updateScenario{
		{
			name:     "all fields",
			newTitle: fmt.Sprintf("Updated Title %s", now()),
			newBody:  fmt.Sprintf("Updated body content %s", gofakeit.Paragraph(1, 2, 8, " ")),
		},
		{
			name:     "partial",
			newTitle: fmt.Sprintf("Partial Update %s", now()),
		},
		{
			name:     "minimal",
			newTitle: fmt.Sprintf("Minimal Update %s", now()),
		},
	}

	for _, scenario := range scenarios {
		scenario := scenario
		t.Run(scenario.name, func(t *T) {
			current := readCurrentRecord(t, knownID)

			doc := current
			doc.Title = scenario.newTitle
			if scenario.newBody != "" {
				doc.Body = scenario.newBody
			}

			resp := t.UpdatePost(knownID, marshalPost(t, doc))
			t.AssertWriteLatency(resp)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			updated := t.RequirePost(resp)
			assert.Equal(t, knownID, updated.ID)
			assert.Equal(t, doc.Title, updated.Title, "updated title should be echoed")
			assert.Equal(t, doc.Body, updated.Body, "body should match the sent document")
			assert.Equal(t, doc.UserID, updated.UserID, "userId should match the sent document")

			persisted := readCurrentRecord(t, knownID)
			assert.Equal(t, doc.Title, persisted.Title, "updated title should persist on re-read")
			assert.Equal(t, doc.Body, persisted.Body, "body should persist on re-read")
			assert.Equal(t, current.UserID, persisted.UserID, "unsent fields should remain unchanged")
		})
	}
}

func readCurrentRecord(t *T, id int) client.Post {
	resp := t.GetPost(id)
	require.Equal(t, http.StatusOK, resp.StatusCode, "record %d should exist", id)
	return t.RequirePost(resp)
}

func marshalPost(t *T, post client.Post) []byte {
	data, err := json.Marshal(post)
	require.NoError(t, err)
	return data
}
