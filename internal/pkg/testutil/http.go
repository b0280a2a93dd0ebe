package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest sends a request through handler and records the response.
// A non-nil body is encoded as JSON. An empty token omits the Authorization header.
func PerformRequest(t *testing.T, handler http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a recorded response body into out.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

// ErrorMessages extracts the msg fields of a [{"msg": "..."}] response body.
func ErrorMessages(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	var body []struct {
		Msg string `json:"msg"`
	}
	DecodeJSON(t, w, &body)

	messages := make([]string, 0, len(body))
	for _, e := range body {
		messages = append(messages, e.Msg)
	}
	return messages
}
