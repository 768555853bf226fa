// Package notes moves planner notes to and from markdown files with YAML
// frontmatter, one file per note.
package notes

import (
	"bytes"
	"regexp"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"lifeplanner/internal/planner/data"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

type noteFrontmatter struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date,omitempty"`
	ID        string `yaml:"id,omitempty"`
	CreatedAt int64  `yaml:"created_at,omitempty"`
}

// Render writes note as markdown: frontmatter, a blank line, then content.
func Render(note data.Note) ([]byte, error) {
	var buf bytes.Buffer

	fm := noteFrontmatter{
		Title:     note.Title,
		ID:        note.ID,
		CreatedAt: note.CreatedAt,
	}
	if note.CreatedAt != 0 {
		fm.Date = note.Created().Format(dateLayout)
	}

	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	buf.WriteString(note.Content)
	if !strings.HasSuffix(note.Content, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Parse reads a markdown note. The title comes from frontmatter or, failing
// that, the filename; created_at falls back to the frontmatter date and then
// to a date in the filename. It returns false when the body is empty.
func Parse(content []byte, filename string) (data.Note, bool) {
	fm, body := parseFrontmatter(content)

	note := data.Note{
		ID:        fm.ID,
		Title:     strings.TrimSpace(fm.Title),
		Content:   strings.TrimSpace(string(body)),
		CreatedAt: fm.CreatedAt,
	}
	if note.Content == "" {
		return data.Note{}, false
	}
	if note.Title == "" {
		note.Title = titleFromFilename(filename)
	}

	if note.CreatedAt == 0 {
		date := fm.Date
		if date == "" {
			date = datePattern.FindString(filename)
		}
		if parsed, err := time.ParseInLocation(dateLayout, date, time.Local); err == nil {
			note.CreatedAt = parsed.UnixMilli()
		}
	}

	return note, true
}

// FileName returns "<date>-<slug>-<id prefix>.md" for note.
func FileName(note data.Note) string {
	parts := []string{}
	if note.CreatedAt != 0 {
		parts = append(parts, note.Created().Format(dateLayout))
	}
	if s := slug(note.Title); s != "" {
		parts = append(parts, s)
	}
	if id := note.ID; id != "" {
		if len(id) > 8 {
			id = id[:8]
		}
		parts = append(parts, id)
	}
	if len(parts) == 0 {
		return "note.md"
	}
	return strings.Join(parts, "-") + ".md"
}

func parseFrontmatter(content []byte) (noteFrontmatter, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return noteFrontmatter{}, content
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}

	if fmEnd == 0 {
		return noteFrontmatter{}, content
	}

	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))
	fmBytes := bytes.Join(lines[1:fmEnd], []byte("\n"))
	var fm noteFrontmatter
	if err := yaml.Unmarshal(fmBytes, &fm); err != nil {
		return noteFrontmatter{}, body
	}
	return fm, body
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")

	// Strip leading date pattern (e.g. "2026-02-14-")
	if loc := datePattern.FindStringIndex(name); loc != nil && loc[0] == 0 {
		after := strings.TrimPrefix(name[loc[1]:], "-")
		if after != "" {
			name = after
		}
	}

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)

	if name == "" {
		return "Note"
	}
	return name
}

func slug(title string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
