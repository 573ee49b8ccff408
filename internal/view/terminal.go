package view

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"campushire/screener/internal/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// TerminalView renders sections and toasts to a writer. The most recent
// message is retained until its TTL passes or another message replaces
// it, mirroring the auto-dismissing toast of the original UI.
type TerminalView struct {
	mu         sync.Mutex
	out        io.Writer
	messageTTL time.Duration

	message     string
	messageKind MessageKind
	messageExp  time.Time
}

func NewTerminalView(out io.Writer, messageTTL time.Duration) *TerminalView {
	return &TerminalView{
		out:        out,
		messageTTL: messageTTL,
	}
}

// Render implements View. Every whitelisted section has a terminal
// surface, so this never fails here.
func (v *TerminalView) Render(section models.SectionID, title string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, titleStyle.Render("◆ "+title))
	fmt.Fprintln(v.out, dimStyle.Render("section: "+string(section)))
	return nil
}

// ShowMessage implements View.
func (v *TerminalView) ShowMessage(text string, kind MessageKind) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.message = text
	v.messageKind = kind
	v.messageExp = time.Now().Add(v.messageTTL)

	style := infoStyle
	switch kind {
	case MessageSuccess:
		style = successStyle
	case MessageWarning:
		style = warnStyle
	case MessageError:
		style = errorStyle
	}
	fmt.Fprintln(v.out, style.Render(text))
}

// CurrentMessage returns the active toast, or false once it has
// expired or been cleared.
func (v *TerminalView) CurrentMessage() (string, MessageKind, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.message == "" || time.Now().After(v.messageExp) {
		return "", "", false
	}
	return v.message, v.messageKind, true
}

// ShowJobPostings implements View.
func (v *TerminalView) ShowJobPostings(postings []models.JobPosting) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintln(v.out, headerStyle.Render(fmt.Sprintf("Job postings (%d)", len(postings))))
	for _, p := range postings {
		fmt.Fprintf(v.out, "  [%s] %s — %s (%s)\n", p.ID, p.Title, p.CampusLocation, p.PositionTypeName)
	}
}

// ShowUploadedFiles implements View.
func (v *TerminalView) ShowUploadedFiles(files []models.FileRecord) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintln(v.out, headerStyle.Render(fmt.Sprintf("Uploaded files (%d)", len(files))))
	now := time.Now()
	for i, f := range files {
		fmt.Fprintf(v.out, "  %d. %s  %s  %s  %s\n",
			i+1, f.Name, FormatFileSize(f.Size), f.Status, dimStyle.Render(FormatUploadAge(f.UploadedAt, now)))
	}
}

// ShowAnalysisResults implements View.
func (v *TerminalView) ShowAnalysisResults(results []models.AnalysisResult, successful int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintln(v.out, headerStyle.Render(fmt.Sprintf("Analysis complete — %d successful", successful)))
	for _, r := range results {
		fmt.Fprintf(v.out, "  %s — match %.0f%%\n", r.Name, r.MatchScore)
	}
}

// SetAnalysisAvailable implements View.
func (v *TerminalView) SetAnalysisAvailable(available bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if available {
		fmt.Fprintln(v.out, dimStyle.Render("Analysis available — run `analyze` to score the uploaded files."))
	}
}

// ResetUploadViews implements View.
func (v *TerminalView) ResetUploadViews() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.message = ""
	fmt.Fprintln(v.out, dimStyle.Render("Upload session cleared."))
}
