package clients

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"type":"solution.accepted"}`, string(body))

		w.Header().Set("X-Delivery", "ok")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer srv.Close()

	client := NewHTTPClientFrom(srv.Client())
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	status, body, respHeaders, err := client.Post(srv.URL, headers, []byte(`{"type":"solution.accepted"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "queued", string(body))
	assert.Equal(t, "ok", respHeaders.Get("X-Delivery"))
}

func TestHTTPClient_PostUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, _, _, err := NewHTTPClient().Post(url, nil, nil)
	assert.Error(t, err)
}
