// Package textsource turns complaint documents into a single page-ordered
// text stream. PDF extraction uses ledongthuc/pdf; plain .txt files pass
// through so already-converted documents can be reprocessed. Everything
// downstream sees one string per document with page breaks as newlines.
package textsource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText reports a document that opened fine but yielded no extractable
// text (image-only scans, empty files).
var ErrNoText = errors.New("document contains no extractable text")

// Extract reads the document at path and returns its full text. This is the
// only fallible step of the pipeline; the caller isolates a failure to the
// one document it belongs to.
func Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".txt", ".text":
		return extractPlain(path)
	default:
		return "", fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return text, nil
}

// extractPDF walks the pages in order, reconstructing lines row by row. The
// pdf library panics on some malformed files, so the whole walk sits behind
// a recover.
func extractPDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction crashed on %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		for _, row := range rows {
			parts := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				b.WriteString("\n")
				b.WriteString(line)
			}
		}
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return b.String(), nil
}

// ListDocuments returns the supported documents directly inside dir, sorted
// by name. A missing directory is an error; an empty one is not.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".pdf", ".txt", ".text":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
