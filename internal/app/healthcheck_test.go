package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_ReportsPhase(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, _, logs := SetupAppTest(t, &Config{LayoutPath: "unused.txt"})
	app.setPhase(phaseSearching)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	// --- Act ---
	app.healthHandler(rec, req)

	// --- Assert ---
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK searching\n", rec.Body.String())
	assert.Contains(t, logs.String(), "Health check endpoint hit.")
}

func TestPhase_DefaultsToStarting(t *testing.T) {
	t.Parallel()

	app, _, _ := SetupAppTest(t, &Config{LayoutPath: "unused.txt"})
	assert.Equal(t, phaseStarting, app.Phase())
	assert.NoError(t, app.closeHealthCheckServer())
}
