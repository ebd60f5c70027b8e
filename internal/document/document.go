// Package document loads and measures the text files quill displays.
// Documents are read-only: quill centers text, it does not edit or
// reflow it.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Document is a loaded text file split into display lines. Long lines are
// not wrapped; the display truncates them to the body width.
type Document struct {
	Path string // Original file path ("" for in-memory documents)
	Name string // Display name, the file base name

	lines     []string
	words     int
	graphemes int
}

// Load reads a UTF-8 text file into a Document. Files containing NUL
// bytes are rejected as binary; invalid UTF-8 sequences are replaced.
func Load(path string) (*Document, error) {
	// #nosec G304 - path is the file the user asked to open
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return nil, fmt.Errorf("%s is not a text file", filepath.Base(path))
	}

	doc := New(filepath.Base(path), strings.ToValidUTF8(string(data), "�"))
	doc.Path = path
	return doc, nil
}

// New builds a Document from in-memory content.
func New(name, content string) *Document {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	// A trailing newline produces one phantom empty line; drop it.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, line := range lines {
		lines[i] = ExpandTabs(line, TabStop)
	}

	return &Document{
		Name:      name,
		lines:     lines,
		words:     len(strings.Fields(content)),
		graphemes: uniseg.GraphemeClusterCount(content),
	}
}

// TabStop is the column width tabs expand to.
const TabStop = 4

// ExpandTabs replaces tabs with spaces up to the next tab stop, measured
// in display columns.
func ExpandTabs(line string, tabStop int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			pad := tabStop - col%tabStop
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// LineCount returns the number of display lines.
func (d *Document) LineCount() int { return len(d.lines) }

// Words returns the whitespace-separated word count.
func (d *Document) Words() int { return d.words }

// Graphemes returns the grapheme cluster count, the closest thing to a
// human-perceived character count.
func (d *Document) Graphemes() int { return d.graphemes }

// Line returns the line at index i, or "" when out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Window returns up to count lines starting at offset, clamped to the
// document bounds.
func (d *Document) Window(offset, count int) []string {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(d.lines) || count <= 0 {
		return nil
	}
	end := offset + count
	if end > len(d.lines) {
		end = len(d.lines)
	}
	return d.lines[offset:end]
}

// MaxOffset returns the largest scroll offset that still fills a view of
// viewHeight lines where possible. Never negative.
func (d *Document) MaxOffset(viewHeight int) int {
	m := len(d.lines) - viewHeight
	if m < 0 {
		return 0
	}
	return m
}

// Progress returns the reading position through the document for the last
// visible line, in percent. An empty document reads as 100.
func (d *Document) Progress(offset, viewHeight int) int {
	if len(d.lines) == 0 {
		return 100
	}
	last := offset + viewHeight
	if last >= len(d.lines) {
		return 100
	}
	return last * 100 / len(d.lines)
}
