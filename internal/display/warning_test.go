package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/seqparser/internal/sequence"
)

func buildSequence(t *testing.T, names ...string) *sequence.Sequence {
	t.Helper()
	tokens := make([]sequence.Token, 0, len(names))
	for _, n := range names {
		tokens = append(tokens, sequence.Tokenize(n))
	}
	seqs, _ := sequence.Build(tokens)
	if len(seqs) != 1 {
		t.Fatalf("expected one sequence from %v, got %d", names, len(seqs))
	}
	return seqs[0]
}

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title: "Missing frames in a.%d",
	}

	w.Display(&buf)

	output := buf.String()

	if !strings.Contains(output, "\x1b[33m") {
		t.Error("Expected yellow ANSI color code in output")
	}
	if !strings.Contains(output, "⚠️  Warning: Missing frames in a.%d") {
		t.Errorf("Expected title line in output, got: %s", output)
	}
	if !strings.HasSuffix(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code at end of output")
	}
}

func TestDisplayWarning_NoColor(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:   "Plain",
		Message: "no escapes",
		NoColor: true,
	}

	w.Display(&buf)

	output := buf.String()
	if strings.Contains(output, "\x1b[") {
		t.Errorf("Expected no ANSI codes, got: %q", output)
	}
	if output != "⚠️  Warning: Plain\n    no escapes\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDisplayWarning_WithFiles(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		wantText string
	}{
		{
			name:     "single file",
			files:    []string{"img.003.exr"},
			wantText: "Affected file:",
		},
		{
			name:     "multiple files",
			files:    []string{"img.003.exr", "img.005.exr", "img.006.exr"},
			wantText: "Affected files:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := Warning{
				Title: "Missing frames",
				Files: tt.files,
			}

			w.Display(&buf)

			output := buf.String()

			if !strings.Contains(output, tt.wantText) {
				t.Errorf("Expected %q in output, got: %s", tt.wantText, output)
			}

			for i, file := range tt.files {
				expected := strings.Repeat(" ", 6) + (string(rune('1' + i))) + ". " + file
				if !strings.Contains(output, expected) {
					t.Errorf("Expected file entry %q in output, got: %s", expected, output)
				}
			}
		})
	}
}

func TestDisplayWarning_Complete(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Missing frames in img.%03d.exr",
		Message:    "2 of 6 frames missing between 1 and 6",
		Files:      []string{"img.003.exr", "img.004.exr"},
		Suggestion: "Re-render frames 3-4",
	}

	w.Display(&buf)

	output := buf.String()

	components := []string{
		"⚠️",
		"Missing frames in img.%03d.exr",
		"    2 of 6 frames missing between 1 and 6",
		"    Affected files:",
		"      1. img.003.exr",
		"      2. img.004.exr",
		"    Suggestion:",
		"    Re-render frames 3-4",
		"\x1b[33m",
		"\x1b[0m",
	}

	for _, component := range components {
		if !strings.Contains(output, component) {
			t.Errorf("Expected component %q in output, got: %s", component, output)
		}
	}
}

func TestWarnMissingFrames(t *testing.T) {
	seq := buildSequence(t, "img.001.exr", "img.002.exr", "img.004.exr")

	w := WarnMissingFrames(seq)

	if w.Title != "Missing frames in img.%03d.exr" {
		t.Errorf("Title = %q", w.Title)
	}
	if w.Message != "1 of 4 frames missing between 1 and 4" {
		t.Errorf("Message = %q", w.Message)
	}
	if len(w.Files) != 1 || w.Files[0] != "img.003.exr" {
		t.Errorf("Files = %v, want [img.003.exr]", w.Files)
	}
	if w.Suggestion != "Re-render frames 3" {
		t.Errorf("Suggestion = %q", w.Suggestion)
	}
}

func TestWarnMissingFrames_Stepped(t *testing.T) {
	seq := buildSequence(t, "r.10.exr", "r.20.exr", "r.50.exr")

	w := WarnMissingFrames(seq)

	if w.Message != "2 of 5 frames missing between 10 and 50" {
		t.Errorf("Message = %q", w.Message)
	}
	if strings.Join(w.Files, ",") != "r.30.exr,r.40.exr" {
		t.Errorf("Files = %v", w.Files)
	}
	if w.Suggestion != "Re-render frames 30-40x10" {
		t.Errorf("Suggestion = %q", w.Suggestion)
	}
}

func TestWarnMissingFrames_TruncatesFileList(t *testing.T) {
	seq := buildSequence(t, "r.1", "r.2", "r.30")

	w := WarnMissingFrames(seq)

	if len(w.Files) != maxListedFiles+1 {
		t.Fatalf("len(Files) = %d, want %d", len(w.Files), maxListedFiles+1)
	}
	if w.Files[0] != "r.3" {
		t.Errorf("Files[0] = %q, want r.3", w.Files[0])
	}
	if w.Files[maxListedFiles] != "... and 17 more" {
		t.Errorf("last entry = %q", w.Files[maxListedFiles])
	}
	if w.Suggestion != "Re-render frames 3-29" {
		t.Errorf("Suggestion = %q", w.Suggestion)
	}
}

func TestWarnMissingFrames_WideGap(t *testing.T) {
	seq := buildSequence(t, "log.0", "log.1", "log.1000000001")

	w := WarnMissingFrames(seq)

	if w.Message != "999999999 of 1000000002 frames missing between 0 and 1000000001" {
		t.Errorf("Message = %q", w.Message)
	}
	if len(w.Files) != maxListedFiles+1 {
		t.Fatalf("len(Files) = %d, want %d", len(w.Files), maxListedFiles+1)
	}
	if w.Files[0] != "log.2" || w.Files[maxListedFiles-1] != "log.11" {
		t.Errorf("Files = %v", w.Files)
	}
	if w.Files[maxListedFiles] != "... and 999999989 more" {
		t.Errorf("last entry = %q", w.Files[maxListedFiles])
	}
	if w.Suggestion != "Re-render frames 2-1000000000" {
		t.Errorf("Suggestion = %q", w.Suggestion)
	}
}
