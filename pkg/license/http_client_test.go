package license

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckParsesBackendResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/license/check", r.URL.Path)
		assert.Equal(t, "device-1", r.URL.Query().Get("device_id"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid": true, "message": "ok"}`))
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, "secret", "device-1")
	res, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "ok", res.Message)
}

func TestCheckReportsBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, "secret", "device-1")
	_, err := c.Check(context.Background())
	assert.Error(t, err)
}

func TestNoopAlwaysValid(t *testing.T) {
	res, err := NewNoop().Check(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Valid)
}
