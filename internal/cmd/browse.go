package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/seqparser/internal/browse"
	"github.com/harrison/seqparser/internal/display"
)

// NewBrowseCommand creates the browse subcommand
func NewBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [directory]...",
		Short: "List folders, files and sequences of one or more directories",
		Long: `Classify the entries of each directory into folders, plain files and
file sequences. Files that differ only by their frame number are grouped:

  [d] plates
  [s] shot.%04d.exr  1001-1100  (98 frames, step 1)
  [f] notes.txt

Output formats: text (default), json, yaml, markdown, html.
Use --missing to print a warning for every sequence with gaps.`,
		RunE: runBrowse,
	}

	cmd.Flags().String("format", "text", "Output format: text, json, yaml, markdown, html")
	cmd.Flags().Bool("missing", false, "Warn about sequences with missing frames")
	addBrowseFlags(cmd)

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := display.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	showMissing, _ := cmd.Flags().GetBool("missing")

	dirs, err := resolveDirs(args)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, dirs[0])
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	var progress *display.ProgressIndicator
	if len(dirs) > 1 && isTerminal(errOut) {
		progress = display.NewProgressIndicator(errOut, len(dirs), display.ColorEnabled(s.cfg.Color, errOut))
		progress.Start()
	}

	results := make([]*browse.Result, 0, len(dirs))
	for _, dir := range dirs {
		if progress != nil {
			progress.Step(dir)
		}
		result, err := s.browser.Browse(dir)
		if err != nil {
			return fmt.Errorf("failed to browse %s: %w", dir, err)
		}
		s.log.LogSummary(result, result.Elapsed)
		results = append(results, result)
	}
	if progress != nil {
		progress.Complete()
	}

	out := cmd.OutOrStdout()
	opts := display.Options{
		Format: format,
		Color:  format == display.FormatText && display.ColorEnabled(s.cfg.Color, out),
	}
	if err := display.Render(out, results, opts); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if showMissing {
		noColor := !display.ColorEnabled(s.cfg.Color, errOut)
		for _, result := range results {
			for _, seq := range result.Sequences() {
				if !seq.HasMissing() {
					continue
				}
				w := display.WarnMissingFrames(seq)
				w.NoColor = noColor
				w.Display(errOut)
			}
		}
	}

	return nil
}
