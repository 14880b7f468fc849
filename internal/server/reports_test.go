package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"baladiya/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReport(t *testing.T) {
	env := newTestEnv(t)
	browser := env.browser(t)
	user := env.register(t, browser, "Ahmed Citizen", "AB123456", "password", "")

	status, payload := env.doJSON(t, browser, http.MethodPost, "/api/reports", map[string]any{
		"category":    "Road",
		"location":    "Avenue Habib Bourguiba",
		"description": "Large pothole near the main intersection",
	})
	require.Equal(t, http.StatusCreated, status)

	var created types.Report
	require.NoError(t, json.Unmarshal(payload, &created))
	assert.Equal(t, types.ReportStatusPending, created.Status)
	assert.Equal(t, user.ID, created.UserID)
	require.NotNil(t, created.Description)
	assert.Equal(t, "Large pothole near the main intersection", *created.Description)
}

func TestCreateReportValidation(t *testing.T) {
	env := newTestEnv(t)
	browser := env.browser(t)
	env.register(t, browser, "Ahmed Citizen", "AB123456", "password", "")

	status, payload := env.doJSON(t, browser, http.MethodPost, "/api/reports", map[string]any{
		"location": "Somewhere",
	})
	require.Equal(t, http.StatusBadRequest, status)

	_, field := decodeMessage(t, payload)
	assert.Equal(t, "category", field)
}

func TestListReportsScopedByRole(t *testing.T) {
	env := newTestEnv(t)

	citizen := env.browser(t)
	env.register(t, citizen, "Ahmed Citizen", "AB123456", "password", "")

	admin := env.browser(t)
	env.register(t, admin, "Admin User", "admin", "admin", types.RoleAdmin)

	status, _ := env.doJSON(t, citizen, http.MethodPost, "/api/reports", map[string]any{
		"category": "Lighting",
		"location": "Rue de la Liberte",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = env.doJSON(t, admin, http.MethodPost, "/api/reports", map[string]any{
		"category": "Trash",
		"location": "City Hall",
	})
	require.Equal(t, http.StatusCreated, status)

	listReports := func(c *http.Client) []*types.Report {
		status, payload := env.doJSON(t, c, http.MethodGet, "/api/reports", nil)
		require.Equal(t, http.StatusOK, status)

		var out []*types.Report
		require.NoError(t, json.Unmarshal(payload, &out))
		return out
	}

	assert.Len(t, listReports(citizen), 1)
	assert.Len(t, listReports(admin), 2)
}

func TestUpdateReportStatus(t *testing.T) {
	env := newTestEnv(t)

	citizen := env.browser(t)
	env.register(t, citizen, "Ahmed Citizen", "AB123456", "password", "")

	admin := env.browser(t)
	env.register(t, admin, "Admin User", "admin", "admin", types.RoleAdmin)

	status, payload := env.doJSON(t, citizen, http.MethodPost, "/api/reports", map[string]any{
		"category": "Water",
		"location": "Bab Bhar",
	})
	require.Equal(t, http.StatusCreated, status)

	var created types.Report
	require.NoError(t, json.Unmarshal(payload, &created))

	patch := func(c *http.Client, id int, newStatus string) (int, []byte) {
		return env.doJSON(t, c, http.MethodPatch,
			"/api/reports/"+itoa(id)+"/status", map[string]any{"status": newStatus})
	}

	t.Run("skipping a stage rejected", func(t *testing.T) {
		status, _ := patch(admin, created.ID, "Resolved")
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("forward transitions", func(t *testing.T) {
		for _, next := range []types.ReportStatus{types.ReportStatusInProgress, types.ReportStatusResolved} {
			status, payload := patch(admin, created.ID, string(next))
			require.Equal(t, http.StatusOK, status)

			var updated types.Report
			require.NoError(t, json.Unmarshal(payload, &updated))
			assert.Equal(t, next, updated.Status)
		}
	})

	t.Run("resolved is terminal", func(t *testing.T) {
		status, _ := patch(admin, created.ID, "Pending")
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("citizen forbidden", func(t *testing.T) {
		status, _ := patch(citizen, created.ID, "In Progress")
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("unknown id", func(t *testing.T) {
		status, _ := patch(admin, 4242, "In Progress")
		assert.Equal(t, http.StatusNotFound, status)
	})
}
