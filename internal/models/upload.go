package models

import "time"

type FileStatus string

const (
	FileStatusReady      FileStatus = "ready"
	FileStatusProcessing FileStatus = "processing"
	FileStatusAnalyzed   FileStatus = "analyzed"
	FileStatusFailed     FileStatus = "failed"
)

// FileRecord is one server-confirmed uploaded file. Insertion order is
// display order.
type FileRecord struct {
	Name        string     `json:"name"`
	Size        int64      `json:"size"`
	Status      FileStatus `json:"status"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}

// UploadResponse is the body of POST /api/upload-files.
type UploadResponse struct {
	Success   bool         `json:"success"`
	SessionID string       `json:"session_id,omitempty"`
	Files     []FileRecord `json:"files,omitempty"`
	FileCount int          `json:"file_count,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// AnalysisRequest is the body of POST /api/start-analysis.
type AnalysisRequest struct {
	SessionID string `json:"session_id"`
}

// AnalysisResult is one analyzed candidate row.
type AnalysisResult struct {
	Name       string  `json:"name"`
	MatchScore float64 `json:"matchScore"`
	FileName   string  `json:"file_name,omitempty"`
	Summary    string  `json:"summary,omitempty"`
}

// AnalysisResponse is the body of POST /api/start-analysis.
type AnalysisResponse struct {
	Success            bool             `json:"success"`
	Results            []AnalysisResult `json:"results,omitempty"`
	SuccessfulAnalyses int              `json:"successful_analyses"`
	Error              string           `json:"error,omitempty"`
}

// JobPostingsResponse is the envelope currently served by
// GET /api/job-postings. Older deployments used `data` or a bare array;
// the client decodes all three.
type JobPostingsResponse struct {
	Success  bool         `json:"success"`
	Postings []JobPosting `json:"postings,omitempty"`
}

// UploadSession correlates one upload batch with a later analysis
// request. Held in memory by the local backend for the process lifetime.
type UploadSession struct {
	ID        string       `json:"id"`
	JobID     string       `json:"job_id"`
	Files     []FileRecord `json:"files"`
	Paths     []string     `json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}
