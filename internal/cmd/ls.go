package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLsCommand creates the ls subcommand, which prints folder names only
func NewLsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "List the folders of a directory",
		Long: `Print the names of the subfolders of a directory, one per line,
sorted by name. Files and sequences are not shown.

Without an argument the current directory is listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLs,
	}

	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
	dirs, err := resolveDirs(args)
	if err != nil {
		return err
	}
	dir := dirs[0]

	s, err := newSession(cmd, dir)
	if err != nil {
		return err
	}

	folders, err := s.browser.FoldersOnly(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	out := cmd.OutOrStdout()
	for _, name := range folders {
		fmt.Fprintln(out, name)
	}
	return nil
}
