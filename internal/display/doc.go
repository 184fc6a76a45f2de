// Package display renders browse results and user-facing warnings.
//
// Listings are written in one of several formats:
//
//	err := display.Render(os.Stdout, results, display.Options{
//	    Format: display.FormatText,
//	    Color:  display.ColorEnabled("auto", os.Stdout),
//	})
//
// The text format prints one line per item:
//
//	[d] renders
//	[s] shot.%04d.exr  1001-1100  (100 frames, step 1)
//	[f] notes.txt
//
// JSON and YAML output carry the full sequence queries (pattern, range,
// step, missing ranges). Markdown output is a table per directory and
// HTML output is that table converted with goldmark.
//
// # Warning Messages
//
// Sequences with gaps can be reported with a yellow warning block:
//
//	for _, seq := range result.Sequences() {
//	    if seq.HasMissing() {
//	        display.WarnMissingFrames(seq).Display(os.Stderr)
//	    }
//	}
//
// All functions accept io.Writer interfaces for testability.
package display
