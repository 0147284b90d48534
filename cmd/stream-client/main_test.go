package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/GolfFortune/internal/infrastructure/llm"
	"github.com/leon37/GolfFortune/internal/model"
)

func TestStreamPrintsBody(t *testing.T) {
	var got model.UserProfile
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, part := range []string{"허허, ", "오늘은 ", "버디각이로다"} {
			_, _ = w.Write([]byte(part))
			w.(http.Flusher).Flush()
		}
	}))
	defer server.Close()

	var out bytes.Buffer
	err := stream(context.Background(), server.URL, model.UserProfile{Name: "김골프", BirthDate: "1990-05-15"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "허허, 오늘은 버디각이로다\n", out.String())
	assert.Equal(t, "김골프", got.Name)
}

func TestStreamReportsErrorChunk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("허허" + llm.ErrorChunk("backend timeout")))
	}))
	defer server.Close()

	var out bytes.Buffer
	err := stream(context.Background(), server.URL, model.UserProfile{Name: "x"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend timeout")
}

func TestStreamNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to stream fortune"}`))
	}))
	defer server.Close()

	err := stream(context.Background(), server.URL, model.UserProfile{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to stream fortune")
}
