package server

import (
	"testing"
	"time"

	"campushire/screener/internal/models"
)

func TestCandidateName(t *testing.T) {
	cases := map[string]string{
		"jane_doe.xlsx":      "Jane Doe",
		"john-smith.xls":     "John Smith",
		"maria.v.lopez.xlsx": "Maria V Lopez",
		"RESUME.xlsx":        "RESUME",
		".xlsx":              "Unknown Candidate",
	}

	for filename, want := range cases {
		if got := candidateName(filename); got != want {
			t.Fatalf("candidateName(%q) = %q, want %q", filename, got, want)
		}
	}
}

func TestMatchScoreStableAndBounded(t *testing.T) {
	names := []string{"jane_doe.xlsx", "JANE_DOE.xlsx", "b.xls", "long_name_with_many_parts.xlsx"}

	for _, name := range names {
		score := matchScore(name)
		if score < 60 || score >= 96 {
			t.Fatalf("matchScore(%q) = %v out of [60,96)", name, score)
		}
		if again := matchScore(name); again != score {
			t.Fatalf("matchScore(%q) not deterministic: %v then %v", name, score, again)
		}
	}

	// Case-insensitive on purpose: the same resume re-uploaded with a
	// shouting filename scores the same.
	if matchScore("jane_doe.xlsx") != matchScore("JANE_DOE.XLSX") {
		t.Fatalf("matchScore must ignore filename case")
	}
}

func TestWorkerAnalyzeOrdersByScore(t *testing.T) {
	w := NewWorker(3)
	w.Start()
	defer w.Stop()

	session := &models.UploadSession{
		ID:    "s1",
		JobID: "1",
		Files: []models.FileRecord{
			{Name: "a.xlsx"},
			{Name: "b.xlsx"},
			{Name: "c.xlsx"},
			{Name: "d.xlsx"},
		},
		CreatedAt: time.Now(),
	}

	results := w.Analyze(session)
	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].MatchScore > results[i-1].MatchScore {
			t.Fatalf("results not sorted by score: %+v", results)
		}
	}
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	session := store.Create("7", []models.FileRecord{{Name: "a.xlsx"}}, []string{"/tmp/a"})
	if session.ID == "" {
		t.Fatalf("session id not issued")
	}

	got, ok := store.Get(session.ID)
	if !ok || got.JobID != "7" {
		t.Fatalf("stored session not found: %v %v", got, ok)
	}

	if _, ok := store.Get("nope"); ok {
		t.Fatalf("unknown session id resolved")
	}

	store.Delete(session.ID)
	if store.Len() != 0 {
		t.Fatalf("session not deleted")
	}
}
