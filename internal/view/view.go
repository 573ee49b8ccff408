package view

import "campushire/screener/internal/models"

type MessageKind string

const (
	MessageInfo    MessageKind = "info"
	MessageSuccess MessageKind = "success"
	MessageWarning MessageKind = "warning"
	MessageError   MessageKind = "error"
)

// View is the rendering surface the controllers drive. Implementations
// own presentation only; all state lives in the controllers. Render
// returns an error when the section has no renderable surface, which
// the navigation layer treats the same as an unknown section.
type View interface {
	Render(section models.SectionID, title string) error
	ShowMessage(text string, kind MessageKind)
	ShowJobPostings(postings []models.JobPosting)
	ShowUploadedFiles(files []models.FileRecord)
	ShowAnalysisResults(results []models.AnalysisResult, successful int)
	SetAnalysisAvailable(available bool)
	ResetUploadViews()
}
