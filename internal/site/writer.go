package site

import (
	"bytes"
	"os"
	"path/filepath"
)

// PageWriter renders pages to a static HTML file.
// Follows Single Responsibility Principle - only handles writing rendered pages to disk.
type PageWriter struct {
	filePath string
	renderer Renderer
	logger   Logger
}

// NewPageWriter creates a new page writer.
// Follows Dependency Injection pattern.
func NewPageWriter(filePath string, renderer Renderer, logger Logger) *PageWriter {
	return &PageWriter{
		filePath: filePath,
		renderer: renderer,
		logger:   logger,
	}
}

// Write renders page and replaces the target file atomically.
func (w *PageWriter) Write(page *Page) error {
	var buf bytes.Buffer
	if err := w.renderer.RenderPage(&buf, page); err != nil {
		w.logger.Printf("Page writer: Failed to render page: %v", err)
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.logger.Printf("Page writer: Failed to create directory %s: %v", dir, err)
		return err
	}

	// Write to temporary file first (atomic write)
	tempFile := w.filePath + ".tmp"
	if err := os.WriteFile(tempFile, buf.Bytes(), 0644); err != nil {
		w.logger.Printf("Page writer: Failed to write temp file: %v", err)
		return err
	}

	// Rename (atomic operation on most filesystems)
	if err := os.Rename(tempFile, w.filePath); err != nil {
		w.logger.Printf("Page writer: Failed to rename temp file: %v", err)
		os.Remove(tempFile) // Cleanup temp file
		return err
	}

	w.logger.Printf("Page writer: Wrote %s (%d bytes, %d projects)", w.filePath, buf.Len(), len(page.Projects.Cards))
	return nil
}
