package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lifeplanner/internal/planner/data"
)

func TestRenderParse_RoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local).UnixMilli()
	note := data.Note{ID: "4b1c9e2a-aaaa", Title: "Идея: приложение", Content: "first line\n\n- bullet", CreatedAt: created}

	content, err := Render(note)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(string(content), "---\n") {
		t.Errorf("expected frontmatter, got %q", content)
	}
	if !strings.Contains(string(content), "date: \"2026-03-02\"") && !strings.Contains(string(content), "date: 2026-03-02") {
		t.Errorf("expected date in frontmatter, got %q", content)
	}

	got, ok := Parse(content, FileName(note))
	if !ok {
		t.Fatal("Parse rejected rendered note")
	}
	if got != note {
		t.Errorf("round trip mismatch:\n  want %+v\n  got  %+v", note, got)
	}
}

func TestParse_Fallbacks(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		filename  string
		wantTitle string
		wantDate  string
		wantOK    bool
	}{
		{
			name:      "no frontmatter",
			content:   "just a body",
			filename:  "2026-02-14-grocery-list.md",
			wantTitle: "grocery list",
			wantDate:  "2026-02-14",
			wantOK:    true,
		},
		{
			name:      "frontmatter date beats filename",
			content:   "---\ntitle: Plan\ndate: 2026-01-05\n---\n\nbody",
			filename:  "2026-02-14-other.md",
			wantTitle: "Plan",
			wantDate:  "2026-01-05",
			wantOK:    true,
		},
		{
			name:      "no date anywhere",
			content:   "---\ntitle: Loose\n---\nbody",
			filename:  "loose.md",
			wantTitle: "Loose",
			wantOK:    true,
		},
		{
			name:     "empty body",
			content:  "---\ntitle: Empty\n---\n\n   \n",
			filename: "empty.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse([]byte(tt.content), tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("want ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if got.Title != tt.wantTitle {
				t.Errorf("want title %q, got %q", tt.wantTitle, got.Title)
			}
			gotDate := ""
			if got.CreatedAt != 0 {
				gotDate = got.Created().Format("2006-01-02")
			}
			if gotDate != tt.wantDate {
				t.Errorf("want date %q, got %q", tt.wantDate, gotDate)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	created := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local).UnixMilli()

	tests := []struct {
		note data.Note
		want string
	}{
		{data.Note{ID: "0123456789", Title: "Hello, World!", CreatedAt: created}, "2026-03-02-hello-world-01234567.md"},
		{data.Note{Title: "Список покупок"}, "список-покупок.md"},
		{data.Note{Title: "!!!"}, "note.md"},
	}

	for _, tt := range tests {
		if got := FileName(tt.note); got != tt.want {
			t.Errorf("FileName(%q): want %q, got %q", tt.note.Title, tt.want, got)
		}
	}
}

func TestExportScan(t *testing.T) {
	dir := t.TempDir()
	notes := []data.Note{
		{ID: "aaaaaaaa-1", Title: "One", Content: "first", CreatedAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.Local).UnixMilli()},
		{ID: "bbbbbbbb-2", Title: "Two", Content: "second", CreatedAt: time.Date(2026, 1, 2, 8, 0, 0, 0, time.Local).UnixMilli()},
	}

	n, err := Export(dir, notes)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 2 {
		t.Errorf("want 2 files written, got %d", n)
	}

	// Hidden directories and non-markdown files are ignored.
	if err := os.MkdirAll(filepath.Join(dir, ".trash"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".trash", "old.md"), []byte("gone"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("skip"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 notes, got %d", len(got))
	}
	for i := range notes {
		if got[i] != notes[i] {
			t.Errorf("note %d: want %+v, got %+v", i, notes[i], got[i])
		}
	}
}

func TestScan_MissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing dir")
	}
}
