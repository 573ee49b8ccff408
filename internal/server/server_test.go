package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushire/screener/internal/config"
	"campushire/screener/internal/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test"},
		Storage: config.StorageConfig{UploadPath: t.TempDir(), MaxFileSize: 16 * 1024 * 1024},
		Worker:  config.WorkerConfig{Concurrency: 2},
	}

	srv, err := New(cfg)
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(func() { srv.Shutdown() })
	return srv
}

func multipartBody(t *testing.T, jobID string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := writer.CreateFormFile("files[]", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if jobID != "" {
		require.NoError(t, writer.WriteField("jobId", jobID))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestJobPostingsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/job-postings", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.JobPostingsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Len(t, body.Postings, len(SeedPostings()))
	assert.Equal(t, "Student Affairs Advisor", body.Postings[6].Title)
}

func TestUploadAndAnalyzeFlow(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, "7", map[string][]byte{
		"jane_doe.xlsx": []byte("workbook"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var uploadResp models.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploadResp))
	require.True(t, uploadResp.Success)
	assert.NotEmpty(t, uploadResp.SessionID)
	assert.Equal(t, 1, uploadResp.FileCount)
	require.Len(t, uploadResp.Files, 1)
	assert.Equal(t, "jane_doe.xlsx", uploadResp.Files[0].Name)
	assert.Equal(t, models.FileStatusReady, uploadResp.Files[0].Status)

	analysisBody, err := json.Marshal(models.AnalysisRequest{SessionID: uploadResp.SessionID})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/api/start-analysis", bytes.NewReader(analysisBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err = srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analysisResp models.AnalysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysisResp))
	require.True(t, analysisResp.Success)
	assert.Equal(t, 1, analysisResp.SuccessfulAnalyses)
	require.Len(t, analysisResp.Results, 1)
	assert.Equal(t, "Jane Doe", analysisResp.Results[0].Name)
	assert.GreaterOrEqual(t, analysisResp.Results[0].MatchScore, float64(60))
	assert.Less(t, analysisResp.Results[0].MatchScore, float64(96))
}

func TestUploadStoresFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test"},
		Storage: config.StorageConfig{UploadPath: dir, MaxFileSize: 16 * 1024 * 1024},
		Worker:  config.WorkerConfig{Concurrency: 1},
	}
	srv, err := New(cfg)
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(func() { srv.Shutdown() })

	body, contentType := multipartBody(t, "1", map[string][]byte{"a.xlsx": []byte("workbook")})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".xlsx", filepath.Ext(entries[0].Name()))

	saved, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("workbook"), saved)
}

func TestUploadRejectsBadExtension(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, "1", map[string][]byte{"resume.pdf": []byte("pdf")})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"success":false`)
	assert.Contains(t, string(raw), "resume.pdf")
}

func TestUploadRequiresJobID(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, "", map[string][]byte{"a.xlsx": []byte("workbook")})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "jobId is required")
}

func TestStartAnalysisUnknownSession(t *testing.T) {
	srv := newTestServer(t)

	payload, err := json.Marshal(models.AnalysisRequest{SessionID: "missing"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/start-analysis", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "session not found")
}
