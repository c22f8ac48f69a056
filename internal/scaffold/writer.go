package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer places generated files on disk under a project root.
type Writer struct {
	root    string
	verbose bool
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string, verbose bool) *Writer {
	return &Writer{root: dir, verbose: verbose}
}

// WriteAll creates the project root and writes every file, creating
// intermediate directories as needed.
func (w *Writer) WriteAll(files []File) error {
	if w.root == "" {
		return fmt.Errorf("project directory is required")
	}
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("failed to ensure project directory: %w", err)
	}

	for _, file := range files {
		dest := filepath.Join(w.root, file.Path)
		if dir := filepath.Dir(dest); dir != w.root {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(dest, []byte(file.Content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
		if w.verbose {
			fmt.Printf("  Generated: %s\n", dest)
		}
	}
	return nil
}
