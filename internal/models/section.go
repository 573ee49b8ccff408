package models

// SectionID identifies one logical screen of the application.
type SectionID string

const (
	SectionDashboard      SectionID = "dashboard"
	SectionUpload         SectionID = "upload"
	SectionCandidates     SectionID = "candidates"
	SectionAnalytics      SectionID = "analytics"
	SectionJobPostings    SectionID = "job-postings"
	SectionSettings       SectionID = "settings"
	SectionUserManagement SectionID = "user-management"
)

// Sections is the whitelist of navigable sections, in display order.
var Sections = []SectionID{
	SectionDashboard,
	SectionUpload,
	SectionCandidates,
	SectionAnalytics,
	SectionJobPostings,
	SectionSettings,
	SectionUserManagement,
}

var sectionTitles = map[SectionID]string{
	SectionDashboard:      "Dashboard",
	SectionUpload:         "Upload Resumes",
	SectionCandidates:     "Candidates",
	SectionAnalytics:      "Analytics",
	SectionJobPostings:    "Job Postings",
	SectionSettings:       "Settings",
	SectionUserManagement: "User Management",
}

// ValidSection reports whether id is on the whitelist.
func ValidSection(id SectionID) bool {
	_, ok := sectionTitles[id]
	return ok
}

// Title returns the caption shown for the section.
func (s SectionID) Title() string {
	if title, ok := sectionTitles[s]; ok {
		return title
	}
	return string(s)
}
