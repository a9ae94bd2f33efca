package transcribe_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akira98000/mp3midi/model"
	"github.com/Akira98000/mp3midi/transcribe"
)

func writeFakeAudio(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0644))
	return path
}

func TestTranscribe(t *testing.T) {
	want := []model.RawNote{
		{Pitch: 60, Start: 0.0, End: 0.5, Velocity: 80},
		{Pitch: 64, Start: 0.25, End: 0.75, Velocity: 90},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transcribe", r.URL.Path)

		file, header, err := r.FormFile("audio")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "clip.mp3", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{"notes": want})
	}))
	defer srv.Close()

	client := transcribe.NewClient(srv.URL)
	got, err := client.Transcribe(context.Background(), writeFakeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTranscribeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "model exploded"})
	}))
	defer srv.Close()

	client := transcribe.NewClient(srv.URL)
	_, err := client.Transcribe(context.Background(), writeFakeAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model exploded")
}

func TestTranscribeMissingFile(t *testing.T) {
	client := transcribe.NewClient("http://localhost:1")
	_, err := client.Transcribe(context.Background(), "/does/not/exist.mp3")
	assert.Error(t, err)
}
