// client/output.go
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ViniZap4/nurse-notes/domain"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFor picks the output format from the file extension. Anything that
// is not .yaml or .yml is written as JSON.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode renders notes as indented JSON or YAML. JSON output keeps
// non-ASCII and HTML characters as-is.
func Encode(notes []domain.Note, format string) ([]byte, error) {
	if notes == nil {
		notes = []domain.Note{}
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(notes); err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}

	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(notes); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}

	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	return buf.Bytes(), nil
}

// WriteNotes encodes notes and writes them to path. An empty format is
// resolved with FormatFor.
func WriteNotes(path, format string, notes []domain.Note) error {
	if format == "" {
		format = FormatFor(path)
	}

	data, err := Encode(notes, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Summary is the one-line listing used by the fetch command:
// id, note date and the first 80 characters of the text.
func Summary(note domain.Note) string {
	text := []rune(note.Text)
	if len(text) > 80 {
		text = text[:80]
	}
	return note.ID + " " + note.NoteDate + " " + string(text)
}
