// Package extractor is the HTTP client for the external PDF slide
// extraction service. The service is an opaque, unversioned dependency:
// this client only knows its two endpoints and validates the response
// shapes it depends on.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ClinkThearly/research-tool-v2/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Extraction walks every page of the PDF and can take a while.
			Timeout: 5 * time.Minute,
		},
	}
}

type uploadResponse struct {
	ExtractionID string `json:"extraction_id"`
	Error        string `json:"error"`
}

type dataResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// Upload sends the PDF as a multipart form and returns the extraction id
// the service assigned. A 2xx response without an extraction_id is an
// error: there is nothing to poll for.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("extractor upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("extractor upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("extractor upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return "", fmt.Errorf("extractor upload: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor upload: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && parsed.Error != "" {
			return "", fmt.Errorf("extraction service: %s", parsed.Error)
		}
		return "", fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("extractor upload decode: %w", decodeErr)
	}

	if parsed.ExtractionID == "" {
		return "", fmt.Errorf("did not receive extraction_id from extraction service")
	}

	return parsed.ExtractionID, nil
}

// Data fetches the extracted slides for a completed extraction. A response
// whose data field is missing or not an array is an error rather than an
// empty document.
func (c *Client) Data(ctx context.Context, extractionID string) ([]model.Slide, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/"+extractionID, nil)
	if err != nil {
		return nil, fmt.Errorf("extractor data: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extractor data: %w", err)
	}
	defer resp.Body.Close()

	var parsed dataResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && parsed.Error != "" {
			return nil, fmt.Errorf("extraction service: %s", parsed.Error)
		}
		return nil, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("extractor data decode: %w", decodeErr)
	}

	if !isJSONArray(parsed.Data) {
		return nil, fmt.Errorf("unexpected data format from extraction service")
	}

	var slides []model.Slide
	if err := json.Unmarshal(parsed.Data, &slides); err != nil {
		return nil, fmt.Errorf("extractor data decode: %w", err)
	}

	return slides, nil
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b == '['
		}
	}
	return false
}
