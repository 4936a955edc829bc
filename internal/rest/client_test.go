package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSuccess(t *testing.T) {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	body, ok := NewClient().Get(context.Background(), server.URL, "secret-token")
	require.True(t, ok)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetNon200ReturnsNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"errors":["boom"]}`))
	}))
	defer server.Close()

	body, ok := NewClient().Get(context.Background(), server.URL, "secret-token")
	assert.False(t, ok)
	assert.Nil(t, body)
}

func TestGetBlankTokenSkipsRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	for _, token := range []string{"", "   "} {
		body, ok := NewClient().Get(context.Background(), server.URL, token)
		assert.False(t, ok)
		assert.Nil(t, body)
	}
	assert.Equal(t, 0, requests, "blank token must not produce a request")
}

func TestGetTransportErrorReturnsNoData(t *testing.T) {
	// Closed server: the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	body, ok := NewClient().Get(context.Background(), url, "secret-token")
	assert.False(t, ok)
	assert.Nil(t, body)
}
