package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/seqparser/internal/sequence"
)

// maxListedFiles caps the affected-file list of a missing-frames warning
const maxListedFiles = 10

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
	NoColor    bool     // Suppress ANSI codes
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	if !w.NoColor {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !w.NoColor {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// WarnMissingFrames creates a warning listing the gaps of seq.
// The file list names the expected filenames of the first missing frames.
func WarnMissingFrames(seq *sequence.Sequence) Warning {
	count := seq.MissingCount()
	expected := count + seq.FrameCount()

	files := make([]string, 0, maxListedFiles+1)
	for _, frame := range seq.FirstMissing(maxListedFiles) {
		files = append(files, seq.NameFor(frame))
	}
	if count > maxListedFiles {
		files = append(files, fmt.Sprintf("... and %d more", count-maxListedFiles))
	}

	return Warning{
		Title:      fmt.Sprintf("Missing frames in %s", seq.StandardPattern()),
		Message:    fmt.Sprintf("%d of %d frames missing between %d and %d", count, expected, seq.FirstTime(), seq.LastTime()),
		Files:      files,
		Suggestion: fmt.Sprintf("Re-render frames %s", seq.MissingRanges()),
	}
}
