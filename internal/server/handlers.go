package server

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"campushire/screener/internal/models"
	"campushire/screener/internal/view"
)

type Handler struct {
	store       *SessionStore
	storage     StorageService
	worker      Worker
	postings    []models.JobPosting
	maxFileSize int64
}

func NewHandler(
	store *SessionStore,
	storage StorageService,
	worker Worker,
	postings []models.JobPosting,
	maxFileSize int64,
) *Handler {
	return &Handler{
		store:       store,
		storage:     storage,
		worker:      worker,
		postings:    postings,
		maxFileSize: maxFileSize,
	}
}

// HandleJobPostings handles GET /api/job-postings
func (h *Handler) HandleJobPostings(c *fiber.Ctx) error {
	return c.JSON(models.JobPostingsResponse{
		Success:  true,
		Postings: h.postings,
	})
}

// HandleUploadFiles handles POST /api/upload-files
func (h *Handler) HandleUploadFiles(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "failed to parse multipart form")
	}

	jobID := c.FormValue("jobId")
	if jobID == "" {
		return fail(c, fiber.StatusBadRequest, "jobId is required")
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		files = form.File["files"]
	}
	if len(files) == 0 {
		return fail(c, fiber.StatusBadRequest, "No files uploaded. Please attach .xlsx or .xls files.")
	}

	var (
		records []models.FileRecord
		paths   []string
		saved   []string
	)

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".xlsx" && ext != ".xls" {
			h.cleanup(saved)
			return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid file type: %s. Only .xlsx and .xls files are accepted.", file.Filename))
		}

		if file.Size > h.maxFileSize {
			h.cleanup(saved)
			return fail(c, fiber.StatusBadRequest, fmt.Sprintf("%s is too large. Max size: %s.", file.Filename, view.FormatFileSize(h.maxFileSize)))
		}

		filename, filePath, err := h.storage.SaveFile(file)
		if err != nil {
			h.cleanup(saved)
			return fail(c, fiber.StatusInternalServerError, fmt.Sprintf("failed to save %s: %v", file.Filename, err))
		}
		saved = append(saved, filename)

		records = append(records, models.FileRecord{
			Name:        file.Filename,
			Size:        file.Size,
			Status:      models.FileStatusReady,
			Description: "Resume batch for job " + jobID,
			Icon:        "spreadsheet",
			UploadedAt:  time.Now(),
		})
		paths = append(paths, filePath)
	}

	session := h.store.Create(jobID, records, paths)

	return c.JSON(models.UploadResponse{
		Success:   true,
		SessionID: session.ID,
		Files:     session.Files,
		FileCount: len(session.Files),
	})
}

// HandleStartAnalysis handles POST /api/start-analysis
func (h *Handler) HandleStartAnalysis(c *fiber.Ctx) error {
	var req models.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if req.SessionID == "" {
		return fail(c, fiber.StatusBadRequest, "session_id is required")
	}

	session, ok := h.store.Get(req.SessionID)
	if !ok {
		return fail(c, fiber.StatusNotFound, "Upload session not found. Please upload files again.")
	}

	results := h.worker.Analyze(session)

	return c.JSON(models.AnalysisResponse{
		Success:            true,
		Results:            results,
		SuccessfulAnalyses: len(results),
	})
}

func (h *Handler) cleanup(saved []string) {
	for _, filename := range saved {
		h.storage.DeleteFile(filename)
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
