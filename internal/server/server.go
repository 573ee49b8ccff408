package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"campushire/screener/internal/config"
	"campushire/screener/internal/models"
)

// Server is the local screener backend: the three endpoints the
// console consumes, with files on disk and sessions in memory.
type Server struct {
	app    *fiber.App
	worker Worker
	port   string
}

func New(cfg *config.Config) (*Server, error) {
	storage := NewStorageService(cfg.Storage.UploadPath)
	if err := storage.EnsureUploadDir(); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	store := NewSessionStore()
	worker := NewWorker(cfg.Worker.Concurrency)
	handler := NewHandler(store, storage, worker, SeedPostings(), cfg.Storage.MaxFileSize)

	app := fiber.New(fiber.Config{
		AppName:      "Campus Hire Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 8,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/job-postings", handler.HandleJobPostings)
	api.Post("/upload-files", handler.HandleUploadFiles)
	api.Post("/start-analysis", handler.HandleStartAnalysis)

	return &Server{
		app:    app,
		worker: worker,
		port:   cfg.Server.Port,
	}, nil
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	s.worker.Start()
	addr := fmt.Sprintf(":%s", s.port)
	if err := s.app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown() error {
	s.worker.Stop()
	return s.app.Shutdown()
}

// Start runs the worker without binding a listener. Used by tests that
// drive the app through app.Test.
func (s *Server) Start() {
	s.worker.Start()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// SeedPostings is the posting catalog served by the local backend.
func SeedPostings() []models.JobPosting {
	return []models.JobPosting{
		{ID: "1", Title: "Assistant Professor, Computer Science", CampusLocation: "Main Campus", Description: "Tenure-track faculty position", PositionTypeName: "Faculty"},
		{ID: "2", Title: "Research Lab Coordinator", CampusLocation: "North Campus", Description: "Laboratory operations and scheduling", PositionTypeName: "Staff"},
		{ID: "3", Title: "Admissions Counselor", CampusLocation: "Main Campus", Description: "Undergraduate admissions outreach", PositionTypeName: "Staff"},
		{ID: "4", Title: "Library Systems Analyst", CampusLocation: "Downtown Campus", Description: "Library technology services", PositionTypeName: "IT"},
		{ID: "5", Title: "Adjunct Instructor, Statistics", CampusLocation: "Online", Description: "Evening statistics courses", PositionTypeName: "Faculty"},
		{ID: "6", Title: "Facilities Project Manager", CampusLocation: "Main Campus", Description: "Capital improvement projects", PositionTypeName: "Administrative"},
		{ID: "7", Title: "Student Affairs Advisor", CampusLocation: "West Campus", Description: "Student engagement programs", PositionTypeName: "Staff"},
	}
}
