package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/seqparser/internal/browse"
)

// colorScheme defines consistent colors for scan counts.
// Green: sequences and frames
// Yellow: missing frames
// Cyan: labels
type colorScheme struct {
	success *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for counts.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single count with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// formatColorizedSummary formats scan counts with color coding.
// Format: "Folders: N, Files: N, Sequences: N, Frames: N, Missing: N"
// Missing frames turn yellow when there are any.
func formatColorizedSummary(s browse.Summary, scheme *colorScheme) string {
	parts := []string{
		formatColorizedMetric("Folders", s.Folders, scheme),
		formatColorizedMetric("Files", s.Files, scheme),
		fmt.Sprintf("%s: %s", scheme.success.Sprint("Sequences"), scheme.value.Sprintf("%d", s.Sequences)),
		fmt.Sprintf("%s: %s", scheme.success.Sprint("Frames"), scheme.value.Sprintf("%d", s.Frames)),
	}

	if s.MissingFrames > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.warn.Sprint("Missing"), scheme.warn.Sprintf("%d", s.MissingFrames)))
	} else {
		parts = append(parts, formatColorizedMetric("Missing", s.MissingFrames, scheme))
	}

	return strings.Join(parts, ", ")
}
