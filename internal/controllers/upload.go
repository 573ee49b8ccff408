package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"campushire/screener/internal/api"
	"campushire/screener/internal/models"
	"campushire/screener/internal/view"
)

type UploadState string

const (
	StateIdle             UploadState = "idle"
	StateJobSelected      UploadState = "job-selected"
	StateFilesUploading   UploadState = "uploading"
	StateFilesUploaded    UploadState = "uploaded"
	StateAnalyzing        UploadState = "analyzing"
	StateAnalysisComplete UploadState = "complete"
)

// Upload drives the file upload and analysis workflow. The isUploading
// and isAnalyzing flags are advisory re-entrancy guards, not locks: a
// second concurrent call of the same operation is turned away without
// queueing or error.
type Upload struct {
	mu  sync.Mutex
	api api.Client
	vw  view.View
	nav *Navigation

	maxFileSize   int64
	redirectDelay time.Duration

	state              UploadState
	selectedJobID      string
	postings           []models.JobPosting
	uploadedFiles      []models.FileRecord
	sessionID          string
	results            []models.AnalysisResult
	successfulAnalyses int
	isUploading        bool
	isAnalyzing        bool
	redirectTimer      *time.Timer
	closed             bool
}

func NewUpload(apiClient api.Client, vw view.View, maxFileSize int64, redirectDelay time.Duration) *Upload {
	return &Upload{
		api:           apiClient,
		vw:            vw,
		maxFileSize:   maxFileSize,
		redirectDelay: redirectDelay,
		state:         StateIdle,
	}
}

// Attach registers the sections this controller owns.
func (u *Upload) Attach(nav *Navigation) {
	u.mu.Lock()
	u.nav = nav
	u.mu.Unlock()

	nav.Register(models.SectionUpload, u.Init)
	nav.Register(models.SectionCandidates, u.showCandidates)
}

// Init refreshes the job posting catalog. Dispatched when the upload
// section activates.
func (u *Upload) Init() error {
	postings, err := u.api.FetchJobPostings(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load job postings: %w", err)
	}

	u.mu.Lock()
	u.postings = postings
	u.mu.Unlock()

	u.vw.ShowJobPostings(postings)
	return nil
}

// SelectJob records the chosen posting. No network call happens here;
// the id travels with the upload.
func (u *Upload) SelectJob(jobID string) {
	u.mu.Lock()
	u.selectedJobID = jobID
	if u.state == StateIdle {
		u.state = StateJobSelected
	}
	u.mu.Unlock()

	u.vw.ShowMessage(fmt.Sprintf("Job %s selected — you can now upload resumes.", jobID), view.MessageSuccess)
}

// AcceptsUploadFile is the client-side validator: Excel extension,
// case-insensitive, and size within the limit. A fast-fail UX check
// only; the server remains the authority.
func AcceptsUploadFile(name string, size, maxSize int64) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".xlsx" && ext != ".xls" {
		return false
	}
	return size <= maxSize
}

// HandleFileSelection validates the chosen paths and uploads whatever
// survives. Rejected files are dropped with a toast; the valid subset
// still proceeds.
func (u *Upload) HandleFileSelection(paths []string) {
	u.mu.Lock()
	jobID := u.selectedJobID
	u.mu.Unlock()

	if jobID == "" {
		u.vw.ShowMessage("Please select a job posting before uploading files.", view.MessageError)
		return
	}

	var valid, rejected []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !AcceptsUploadFile(filepath.Base(path), info.Size(), u.maxFileSize) {
			rejected = append(rejected, filepath.Base(path))
			continue
		}
		valid = append(valid, path)
	}

	if len(rejected) > 0 {
		u.vw.ShowMessage(fmt.Sprintf("Skipped %s: only .xlsx/.xls files up to %s are accepted.",
			strings.Join(rejected, ", "), view.FormatFileSize(u.maxFileSize)), view.MessageError)
	}
	if len(valid) == 0 {
		return
	}

	u.UploadFiles(valid)
}

// UploadFiles sends one multipart request carrying every file plus the
// selected job id. A call while an upload is already in flight is a
// no-op.
func (u *Upload) UploadFiles(paths []string) {
	u.mu.Lock()
	if u.isUploading {
		u.mu.Unlock()
		return
	}
	u.isUploading = true
	u.cancelRedirectLocked()
	prevState := u.state
	u.state = StateFilesUploading
	jobID := u.selectedJobID
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		u.isUploading = false
		u.mu.Unlock()
	}()

	resp, err := u.api.UploadFiles(context.Background(), jobID, paths)
	if err != nil {
		u.mu.Lock()
		u.state = prevState
		u.mu.Unlock()
		u.vw.ShowMessage(userMessage(err, "Upload failed. Please try again."), view.MessageError)
		return
	}

	u.mu.Lock()
	u.sessionID = resp.SessionID
	u.uploadedFiles = append([]models.FileRecord(nil), resp.Files...)
	u.state = StateFilesUploaded
	files := append([]models.FileRecord(nil), u.uploadedFiles...)
	u.mu.Unlock()

	u.vw.ShowUploadedFiles(files)
	u.vw.SetAnalysisAvailable(true)
	u.vw.ShowMessage(fmt.Sprintf("%d file(s) uploaded successfully.", resp.FileCount), view.MessageSuccess)
}

// StartAnalysis asks the server to score the uploaded batch. Requires a
// session id; guarded against re-entry the same way as UploadFiles.
func (u *Upload) StartAnalysis() {
	u.mu.Lock()
	if u.sessionID == "" {
		u.mu.Unlock()
		u.vw.ShowMessage("Please upload files before starting analysis.", view.MessageError)
		return
	}
	if u.isAnalyzing {
		u.mu.Unlock()
		return
	}
	u.isAnalyzing = true
	u.state = StateAnalyzing
	sessionID := u.sessionID
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		u.isAnalyzing = false
		u.mu.Unlock()
	}()

	resp, err := u.api.StartAnalysis(context.Background(), sessionID)
	if err != nil {
		u.mu.Lock()
		u.state = StateFilesUploaded
		u.mu.Unlock()
		u.vw.ShowMessage(userMessage(err, "Analysis failed. Please try again."), view.MessageError)
		return
	}

	u.mu.Lock()
	u.results = append([]models.AnalysisResult(nil), resp.Results...)
	u.successfulAnalyses = resp.SuccessfulAnalyses
	u.state = StateAnalysisComplete
	u.mu.Unlock()

	u.vw.ShowAnalysisResults(resp.Results, resp.SuccessfulAnalyses)

	if len(resp.Results) > 0 {
		u.scheduleCandidatesRedirect()
	}
}

// scheduleCandidatesRedirect arms the delayed jump to the candidates
// section. The timer is cancelled when the controller closes, the
// session clears, or a new upload starts.
func (u *Upload) scheduleCandidatesRedirect() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed || u.nav == nil {
		return
	}
	u.cancelRedirectLocked()
	nav := u.nav
	u.redirectTimer = time.AfterFunc(u.redirectDelay, func() {
		nav.ShowSection(models.SectionCandidates)
	})
}

func (u *Upload) cancelRedirectLocked() {
	if u.redirectTimer != nil {
		u.redirectTimer.Stop()
		u.redirectTimer = nil
	}
}

// RemoveUploadedFile removes the entry at index. Emptying the sequence
// behaves exactly like ClearUploadedFiles.
func (u *Upload) RemoveUploadedFile(index int) {
	u.mu.Lock()
	if index < 0 || index >= len(u.uploadedFiles) {
		u.mu.Unlock()
		u.vw.ShowMessage("No uploaded file at that position.", view.MessageError)
		return
	}

	u.uploadedFiles = append(u.uploadedFiles[:index], u.uploadedFiles[index+1:]...)
	if len(u.uploadedFiles) == 0 {
		u.clearLocked()
		u.mu.Unlock()
		u.vw.ResetUploadViews()
		return
	}

	files := append([]models.FileRecord(nil), u.uploadedFiles...)
	u.mu.Unlock()
	u.vw.ShowUploadedFiles(files)
}

// ClearUploadedFiles resets the upload session back to job selection.
func (u *Upload) ClearUploadedFiles() {
	u.mu.Lock()
	u.clearLocked()
	u.mu.Unlock()
	u.vw.ResetUploadViews()
}

func (u *Upload) clearLocked() {
	u.uploadedFiles = nil
	u.sessionID = ""
	u.results = nil
	u.successfulAnalyses = 0
	u.isUploading = false
	u.isAnalyzing = false
	u.cancelRedirectLocked()
	if u.selectedJobID != "" {
		u.state = StateJobSelected
	} else {
		u.state = StateIdle
	}
}

// Close tears the controller down and cancels any pending redirect.
func (u *Upload) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.closed = true
	u.cancelRedirectLocked()
}

func (u *Upload) showCandidates() error {
	u.mu.Lock()
	results := append([]models.AnalysisResult(nil), u.results...)
	successful := u.successfulAnalyses
	u.mu.Unlock()

	if len(results) == 0 {
		u.vw.ShowMessage("No candidates yet — upload and analyze resumes first.", view.MessageInfo)
		return nil
	}
	u.vw.ShowAnalysisResults(results, successful)
	return nil
}

func (u *Upload) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *Upload) SelectedJobID() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.selectedJobID
}

func (u *Upload) SessionID() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sessionID
}

func (u *Upload) UploadedFiles() []models.FileRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.FileRecord(nil), u.uploadedFiles...)
}

func (u *Upload) JobPostings() []models.JobPosting {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.JobPosting(nil), u.postings...)
}

func (u *Upload) Results() []models.AnalysisResult {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.AnalysisResult(nil), u.results...)
}

// userMessage surfaces the server's own error message when one exists,
// falling back to a generic line otherwise.
func userMessage(err error, fallback string) string {
	var srvErr *api.ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message
	}
	return fallback
}
