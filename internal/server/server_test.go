// file: internal/server/server_test.go
// version: 1.0.0
// guid: 28a3b087-d9db-498d-9f23-d1792b3861d8

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medboxlabs/medbox-reader/internal/recognizer"
	"github.com/medboxlabs/medbox-reader/internal/vocab"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	index, err := vocab.BuildIndex([]vocab.Record{
		{CanonicalName: "paracetamol"},
		{CanonicalName: "amoxicillin"},
	})
	require.NoError(t, err)

	rec, err := recognizer.New(index, recognizer.Options{Threshold: 85})
	require.NoError(t, err)

	return New(rec, DefaultConfig())
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestRecognizeEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/recognize", map[string]any{
		"text": "patient got paracetmol 500mg",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PassID     string   `json:"pass_id"`
		Recognized []string `json:"recognized"`
		TokenCount int      `json:"token_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"paracetamol"}, resp.Recognized)
	assert.NotEmpty(t, resp.PassID)
	assert.Equal(t, 4, resp.TokenCount)
}

func TestRecognizeEndpointEmptyText(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/recognize", map[string]any{"text": ""})
	require.Equal(t, http.StatusOK, w.Code, "empty text is a valid request")

	var resp struct {
		Recognized []string `json:"recognized"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recognized)
}

func TestRecognizeEndpointWithEntities(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/recognize", map[string]any{
		"text": "paracetamol amoxicillin",
		"entities": []map[string]string{
			{"text": "paracetamol", "label": "PRODUCT"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recognized []string `json:"recognized"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"paracetamol"}, resp.Recognized)
}

func TestRecognizeEndpointBadBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recognize", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVocabularyEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/vocabulary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int      `json:"count"`
		Names []string `json:"names"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, []string{"paracetamol", "amoxicillin"}, resp.Names)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status     string `json:"status"`
		Vocabulary int    `json:"vocabulary"`
		Threshold  int    `json:"threshold"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Vocabulary)
	assert.Equal(t, 85, resp.Threshold)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "medbox_reader")
}

func TestRateLimitExceeded(t *testing.T) {
	index, err := vocab.BuildIndex([]vocab.Record{{CanonicalName: "paracetamol"}})
	require.NoError(t, err)
	rec, err := recognizer.New(index, recognizer.Options{})
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.RequestsPerMinute = 1
	cfg.Burst = 1
	s := New(rec, cfg)

	first := doJSON(t, s, http.MethodPost, "/api/v1/recognize", map[string]any{"text": "x"})
	assert.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, s, http.MethodPost, "/api/v1/recognize", map[string]any{"text": "x"})
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
