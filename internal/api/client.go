package api

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
	"strings"

	"campushire/screener/internal/models"
)

// Client talks to the screener backend. One call of each kind may be in
// flight at a time; callers hold their own re-entrancy guards, so the
// client itself applies no timeout and no retry.
type Client interface {
	FetchJobPostings(ctx context.Context) ([]models.JobPosting, error)
	UploadFiles(ctx context.Context, jobID string, paths []string) (*models.UploadResponse, error)
	StartAnalysis(ctx context.Context, sessionID string) (*models.AnalysisResponse, error)
}

// ServerError carries the error field of a {success:false} response so
// callers can surface the server's own message verbatim.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) Client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// FetchJobPostings implements Client.
func (c *client) FetchJobPostings(ctx context.Context) ([]models.JobPosting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/job-postings", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build job postings request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job postings: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read job postings response: %w", err)
	}

	return decodeJobPostings(body)
}

// decodeJobPostings accepts the three envelope shapes the server has
// served over time: {postings:[...]}, {data:[...]}, or a bare array.
func decodeJobPostings(body []byte) ([]models.JobPosting, error) {
	var envelope struct {
		Success  *bool               `json:"success"`
		Error    string              `json:"error"`
		Postings []models.JobPosting `json:"postings"`
		Data     []models.JobPosting `json:"data"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Success != nil && !*envelope.Success {
			return nil, &ServerError{Message: envelope.Error}
		}
		if envelope.Postings != nil {
			return envelope.Postings, nil
		}
		if envelope.Data != nil {
			return envelope.Data, nil
		}
	}

	var bare []models.JobPosting
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("unrecognized job postings response")
}

// UploadFiles implements Client. All files travel in one multipart POST
// as files[] parts alongside the selected job id.
func (c *client) UploadFiles(ctx context.Context, jobID string, paths []string) (*models.UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, path := range paths {
		if err := writeFilePart(writer, path); err != nil {
			return nil, err
		}
	}

	if err := writer.WriteField("jobId", jobID); err != nil {
		return nil, fmt.Errorf("failed to write jobId field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-files", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	var uploadResp models.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	if !uploadResp.Success {
		return nil, &ServerError{Message: uploadResp.Error}
	}

	return &uploadResp, nil
}

func writeFilePart(writer *multipart.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("files[]", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form file for %s: %w", path, err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy %s into form: %w", path, err)
	}

	return nil
}

// StartAnalysis implements Client.
func (c *client) StartAnalysis(ctx context.Context, sessionID string) (*models.AnalysisResponse, error) {
	payload, err := json.Marshal(models.AnalysisRequest{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/start-analysis", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	var analysisResp models.AnalysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&analysisResp); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	if !analysisResp.Success {
		return nil, &ServerError{Message: analysisResp.Error}
	}

	return &analysisResp, nil
}
