package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"campushire/screener/internal/models"
)

func TestTerminalViewMessageLifecycle(t *testing.T) {
	var buf bytes.Buffer
	v := NewTerminalView(&buf, 50*time.Millisecond)

	v.ShowMessage("upload complete", MessageSuccess)

	text, kind, ok := v.CurrentMessage()
	if !ok || text != "upload complete" || kind != MessageSuccess {
		t.Fatalf("current message = %q/%s/%v", text, kind, ok)
	}

	// A newer message replaces the old one before it expires.
	v.ShowMessage("session cleared", MessageInfo)
	text, _, ok = v.CurrentMessage()
	if !ok || text != "session cleared" {
		t.Fatalf("replacement message = %q/%v", text, ok)
	}

	time.Sleep(70 * time.Millisecond)
	if _, _, ok := v.CurrentMessage(); ok {
		t.Fatalf("message survived past its TTL")
	}
}

func TestTerminalViewRenderWritesSection(t *testing.T) {
	var buf bytes.Buffer
	v := NewTerminalView(&buf, time.Second)

	if err := v.Render(models.SectionUpload, "Upload Resumes"); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Upload Resumes") {
		t.Fatalf("render output missing title: %q", out)
	}
	if !strings.Contains(out, "section: upload") {
		t.Fatalf("render output missing section id: %q", out)
	}
}

func TestTerminalViewShowUploadedFiles(t *testing.T) {
	var buf bytes.Buffer
	v := NewTerminalView(&buf, time.Second)

	v.ShowUploadedFiles([]models.FileRecord{
		{Name: "a.xlsx", Size: 512 * 1024, Status: models.FileStatusReady, UploadedAt: time.Now()},
	})

	out := buf.String()
	for _, want := range []string{"a.xlsx", "512.00 KB", "ready", "just now"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %q", want, out)
		}
	}
}
