package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/homeplanner/pkg/config"
)

func testServer(t *testing.T, opts ...func(*config.Config)) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	for _, opt := range opts {
		opt(cfg)
	}
	srv := httptest.NewServer(New(cfg).Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func validSpec() map[string]any {
	return map[string]any{"area": 2000, "bedrooms": 3, "bathrooms": 2, "style": "Modern"}
}

func TestHealth(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestPlanEndpoint(t *testing.T) {
	srv := testServer(t)
	resp := postJSON(t, srv.URL+"/api/plan", validSpec())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body planResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.NotEmpty(t, body.PlanID)
	assert.False(t, body.GeneratedAt.IsZero())
	require.NotNil(t, body.Scene)
	assert.NotEmpty(t, body.Scene.Primitives)
	require.NotNil(t, body.Validation)
	assert.True(t, body.Validation.Valid)
	require.NotNil(t, body.Metrics)
	assert.Positive(t, body.Metrics.FootprintArea)
	require.NotNil(t, body.Cost)
	assert.Positive(t, body.Cost.Breakdown.Total)
}

func TestPlanEndpointUniquePlanIDs(t *testing.T) {
	srv := testServer(t)

	var first, second planResponse
	resp := postJSON(t, srv.URL+"/api/plan", validSpec())
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp = postJSON(t, srv.URL+"/api/plan", validSpec())
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))

	assert.NotEqual(t, first.PlanID, second.PlanID)
	// Scenes are deterministic even though envelopes differ.
	assert.Equal(t, first.Scene, second.Scene)
}

func TestPlanEndpointRejectsInvalidSpec(t *testing.T) {
	srv := testServer(t)
	resp := postJSON(t, srv.URL+"/api/plan", map[string]any{"area": -1, "bedrooms": 0, "bathrooms": 0})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Validation)
	assert.False(t, body.Validation.Valid)
	assert.NotEmpty(t, body.Validation.Errors)
}

func TestPlanEndpointRejectsMalformedBody(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Post(srv.URL+"/api/plan", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRenderEndpoint(t *testing.T) {
	srv := testServer(t)
	resp := postJSON(t, srv.URL+"/api/render", validSpec())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	_, err := png.Decode(resp.Body)
	assert.NoError(t, err)
}

func TestSuggestEndpoint(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"add a skylight"}`))
	}))
	defer backend.Close()

	srv := testServer(t, func(cfg *config.Config) {
		cfg.Suggest.BaseURL = backend.URL
	})

	resp := postJSON(t, srv.URL+"/api/suggest/design", validSpec())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "design", body["topic"])
	assert.Equal(t, "add a skylight", body["suggestion"])
}

func TestSuggestEndpointUnknownTopic(t *testing.T) {
	srv := testServer(t)
	resp := postJSON(t, srv.URL+"/api/suggest/astrology", validSpec())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSuggestEndpointBackendDown(t *testing.T) {
	srv := testServer(t, func(cfg *config.Config) {
		cfg.Suggest.BaseURL = "http://127.0.0.1:1"
	})
	resp := postJSON(t, srv.URL+"/api/suggest/budget", validSpec())
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
