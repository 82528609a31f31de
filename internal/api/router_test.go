package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/vesting-panel/internal/model"
	"github.com/AlexZinkM/vesting-panel/vesting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSetupRouterRequiresPanel(t *testing.T) {
	_, err := SetupRouter(Deps{})
	assert.Error(t, err)
}

func TestRouterRoutes(t *testing.T) {
	panel := vesting.NewPanel(nil, nil, zaptest.NewLogger(t), vesting.Options{})
	router, err := SetupRouter(Deps{Panel: panel, Log: zaptest.NewLogger(t)})
	require.NoError(t, err)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/vesting/state")
	require.Equal(t, http.StatusOK, rec.Code)
	var state model.PanelState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.False(t, state.Connection.Connected)

	assert.Equal(t, http.StatusOK, get("/").Code)
	assert.Equal(t, http.StatusNotFound, get("/nope").Code)
	assert.Equal(t, http.StatusOK, get("/swagger/doc.json").Code)

	// connect with no wallet configured shows up in the metrics
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vesting/connect", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	metrics := get("/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `vesting_panel_actions_total{action="connect",kind="provider_absent"}`)
}
