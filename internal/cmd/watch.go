package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harrison/seqparser/internal/browse"
	"github.com/harrison/seqparser/internal/display"
	"github.com/harrison/seqparser/internal/watch"
)

// NewWatchCommand creates the watch subcommand
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Print the listing of a directory again whenever it changes",
		Long: `Watch one directory (not its subfolders) and print its listing after
every change, once writes have settled for the configured debounce period
(watch.debounce, default 200ms). Stop with Ctrl-C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().Duration("debounce", 0, "Quiet period before rescanning (overrides config)")
	addBrowseFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	dirs, err := resolveDirs(args)
	if err != nil {
		return err
	}
	dir := dirs[0]

	s, err := newSession(cmd, dir)
	if err != nil {
		return err
	}

	debounce := s.cfg.Watch.Debounce
	if cmd.Flags().Changed("debounce") {
		debounce, _ = cmd.Flags().GetDuration("debounce")
	}

	w, err := watch.New(dir, s.browser, watch.WithDebounce(debounce), watch.WithLogger(s.log))
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	opts := display.Options{
		Format: display.FormatText,
		Color:  display.ColorEnabled(s.cfg.Color, out),
	}
	scans := 0

	return w.Run(ctx, func(result *browse.Result) error {
		if scans > 0 {
			fmt.Fprintln(out)
		}
		scans++

		s.log.LogSummary(result, result.Elapsed)
		for _, seq := range result.Sequences() {
			s.log.LogSequence(seq)
		}
		return display.Render(out, []*browse.Result{result}, opts)
	})
}
