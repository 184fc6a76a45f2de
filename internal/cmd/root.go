package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for seqls
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqls",
		Short: "List directories with numbered files grouped into sequences",
		Long: `seqls lists a directory the way an image pipeline sees it: numbered
files such as render.0001.exr .. render.0100.exr are collapsed into one
sequence entry (render.%04d.exr), next to the folders and plain files.

Settings are read from .seqparser/config.yaml in the listed directory or
one of its parents, or from the file named by SEQPARSER_CONFIG.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: nearest .seqparser/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("color", "", "Colored output: auto, always, never")

	cmd.AddCommand(NewLsCommand())
	cmd.AddCommand(NewBrowseCommand())
	cmd.AddCommand(NewWatchCommand())

	return cmd
}
