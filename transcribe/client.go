package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Akira98000/mp3midi/model"
)

// Client talks to a basic-pitch transcription sidecar over its REST API.
// The sidecar runs the neural model; this process never touches audio
// samples itself.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a transcriber client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// transcription of a long file can take a while
		http: &http.Client{Timeout: 5 * time.Minute},
	}
}

type transcribeResponse struct {
	Notes []model.RawNote `json:"notes"`
	Error string          `json:"detail"`
}

// Transcribe uploads an audio file and returns the decoded note events.
func (c *Client) Transcribe(ctx context.Context, audioPath string) ([]model.RawNote, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("audio", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit transcription: %w", err)
	}
	defer resp.Body.Close()

	var result transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return nil, fmt.Errorf("transcriber: %s", result.Error)
		}
		return nil, fmt.Errorf("transcriber returned status %d", resp.StatusCode)
	}
	return result.Notes, nil
}
