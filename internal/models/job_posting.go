package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	DefaultPostingTitle  = "University Position"
	DefaultPostingCampus = "Main Campus"
	DefaultPostingType   = "General"
)

// JobPosting is a posting as served by the job-postings endpoint. The
// server has shipped several field spellings over time, so decoding
// accepts the known alternates and fills defaults for anything missing.
type JobPosting struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	CampusLocation   string `json:"campus"`
	Description      string `json:"description"`
	PositionTypeName string `json:"position_type_name"`
}

func (p *JobPosting) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID               json.RawMessage `json:"id"`
		Title            string          `json:"title"`
		PositionTitle    string          `json:"position_title"`
		Campus           string          `json:"campus"`
		CampusLocation   string          `json:"campus_location"`
		CampusName       string          `json:"campus_name"`
		Description      string          `json:"description"`
		PositionCategory string          `json:"position_category"`
		PositionTypeName string          `json:"position_type_name"`
		Category         string          `json:"category"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode job posting: %w", err)
	}

	p.ID = decodeID(raw.ID)
	p.Title = firstNonEmpty(raw.Title, raw.PositionTitle, DefaultPostingTitle)
	p.CampusLocation = firstNonEmpty(raw.Campus, raw.CampusLocation, raw.CampusName, DefaultPostingCampus)
	p.Description = firstNonEmpty(raw.Description, raw.PositionCategory, "")
	p.PositionTypeName = firstNonEmpty(raw.PositionTypeName, raw.Category, DefaultPostingType)

	return nil
}

// decodeID tolerates both numeric and string ids.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return strings.Trim(string(raw), `"`)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
