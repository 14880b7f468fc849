package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationURL(t *testing.T) {
	assert.Equal(t, "/api/requests/42/status",
		UpdateRequestStatus.URL(map[string]any{"id": 42}))

	assert.Equal(t, "/api/news/7", DeleteNews.URL(map[string]any{"id": 7}))

	// No parameters to substitute.
	assert.Equal(t, "/api/requests", ListRequests.URL(nil))

	// Unknown params are ignored, missing ones left in place.
	assert.Equal(t, "/api/requests/:id/status",
		UpdateRequestStatus.URL(map[string]any{"other": 1}))
}
