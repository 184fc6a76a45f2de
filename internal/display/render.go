package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/harrison/seqparser/internal/browse"
)

// Format selects an output renderer
type Format string

// Supported output formats
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the accepted format names in help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("invalid format %q, must be one of: %s", s, strings.Join(names, ", "))
}

// Options control rendering
type Options struct {
	Format Format
	Color  bool // text format only
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
	),
)

// Render writes results in the selected format.
// JSON output is an object for one result and an array for several;
// YAML output is one document per result.
func Render(w io.Writer, results []*browse.Result, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return renderText(w, results, opts.Color)
	case FormatJSON:
		return renderJSON(w, results)
	case FormatYAML:
		return renderYAML(w, results)
	case FormatMarkdown:
		_, err := io.WriteString(w, renderMarkdown(results))
		return err
	case FormatHTML:
		return renderHTML(w, results)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

func renderText(w io.Writer, results []*browse.Result, colored bool) error {
	folder := newColor(colored, color.FgBlue, color.Bold)
	seqColor := newColor(colored, color.FgGreen)
	header := newColor(colored, color.Bold)

	var b strings.Builder
	for i, result := range results {
		if len(results) > 1 {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(header.Sprintf("%s:", result.Directory))
			b.WriteString("\n")
		}
		for _, it := range result.Items {
			b.WriteString(TextLine(it, folder, seqColor))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// TextLine renders one item as "[d] name", "[f] name" or
// "[s] pattern  first-last  (N frames, step S)".
func TextLine(it browse.Item, folder, seqColor *color.Color) string {
	if seq, ok := it.Sequence(); ok {
		return fmt.Sprintf("[s] %s  %d-%d  (%d frames, step %d)",
			seqColor.Sprint(it.Name()), seq.FirstTime(), seq.LastTime(), seq.FrameCount(), seq.Step())
	}
	if it.IsFolder() {
		return "[d] " + folder.Sprint(it.Name())
	}
	return "[f] " + it.Name()
}

func renderJSON(w io.Writer, results []*browse.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if len(results) == 1 {
		return enc.Encode(NewReport(results[0]))
	}
	reports := make([]Report, 0, len(results))
	for _, r := range results {
		reports = append(reports, NewReport(r))
	}
	return enc.Encode(reports)
}

func renderYAML(w io.Writer, results []*browse.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range results {
		if err := enc.Encode(NewReport(r)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	}
	return enc.Close()
}

func renderMarkdown(results []*browse.Result) string {
	var b strings.Builder
	for i, result := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", markdownCell(result.Directory))
		b.WriteString("| Type | Name | Range | Frames | Missing |\n")
		b.WriteString("|------|------|-------|--------|---------|\n")
		for _, it := range result.Items {
			name := "`" + markdownCell(it.Name()) + "`"
			if seq, ok := it.Sequence(); ok {
				fmt.Fprintf(&b, "| %s | %s | %s | %d | %d |\n",
					it.Kind(), name, seq.Ranges(), seq.FrameCount(), seq.MissingCount())
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | | | |\n", it.Kind(), name)
		}

		s := result.Summary()
		fmt.Fprintf(&b, "\n%d folders, %d files, %d sequences (%d frames, %d missing)\n",
			s.Folders, s.Files, s.Sequences, s.Frames, s.MissingFrames)
	}
	return b.String()
}

// markdownCell escapes characters that would break a table row.
func markdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderHTML(w io.Writer, results []*browse.Result) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(renderMarkdown(results)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>seqls</title></head>\n<body>\n%s</body>\n</html>\n", body.String())
	return err
}
