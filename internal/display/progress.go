package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ProgressIndicator reports a multi-directory scan, one line per directory
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
	step    *color.Color
	done    *color.Color
}

// NewProgressIndicator creates a new progress indicator for total directories
func NewProgressIndicator(w io.Writer, total int, colored bool) *ProgressIndicator {
	return &ProgressIndicator{
		writer:  w,
		total:   total,
		current: 0,
		step:    newColor(colored, color.FgCyan),
		done:    newColor(colored, color.FgGreen),
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Scanning %d directories:\n", p.total)
}

// Step displays progress for the current directory: [N/Total] dir
func (p *ProgressIndicator) Step(dir string) {
	p.current++
	fmt.Fprintln(p.writer, p.step.Sprintf("  [%d/%d] %s", p.current, p.total, dir))
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "%s Scanned %d directories\n", p.done.Sprint("✓"), p.current)
}
