package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lifeplanner/internal/planner/data"
)

// Export writes every note to dir, creating it if needed. Existing files
// with the same name are overwritten.
func Export(dir string, notes []data.Note) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}

	written := 0
	for _, note := range notes {
		content, err := Render(note)
		if err != nil {
			return written, fmt.Errorf("render note %s: %w", note.ID, err)
		}
		path := filepath.Join(dir, FileName(note))
		if err := os.WriteFile(path, content, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}

// Scan reads every markdown note under dir, skipping hidden and vendored
// directories. Files with an empty body are ignored. Notes are returned in
// path order.
func Scan(dir string) ([]data.Note, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	var out []data.Note
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if note, ok := Parse(content, filepath.Base(path)); ok {
			out = append(out, note)
		}
	}
	return out, nil
}

func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor":
		return true
	}
	return false
}
