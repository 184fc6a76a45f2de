package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/seqparser/internal/browse"
	"github.com/harrison/seqparser/internal/config"
	"github.com/harrison/seqparser/internal/display"
	"github.com/harrison/seqparser/internal/logger"
)

// addBrowseFlags registers the flags that shape a listing
func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("ignore", nil, "Glob pattern of entry names to skip (repeatable)")
	cmd.Flags().Bool("hidden", true, "Include dot-files and dot-folders")
	cmd.Flags().Int("min-length", 0, "Smallest number of frames that forms a sequence")
	cmd.Flags().Bool("strict-padding", false, "Never group frame numbers of different widths")
}

// session holds the resolved settings of one command invocation
type session struct {
	cfg     *config.Config
	log     *logger.ConsoleLogger
	browser *browse.Browser
}

// newSession loads configuration for dir, applies flags and builds the
// logger and browser.
func newSession(cmd *cobra.Command, dir string) (*session, error) {
	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return nil, err
	}

	errOut := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	log.SetColor(display.ColorEnabled(cfg.Color, errOut))

	browser, err := browse.NewBrowser(nil,
		browse.WithPolicy(cfg.Policy()),
		browse.WithIgnore(cfg.Browse.Ignore...),
		browse.WithHidden(cfg.Browse.ShowHidden),
		browse.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, log: log, browser: browser}, nil
}

// loadConfig reads the config file and merges explicitly set flags over it
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		resolved, err := config.ResolveConfigPath(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		configPath = resolved
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	var (
		logLevelPtr, colorPtr       *string
		minLengthPtr                *int
		strictPaddingPtr, hiddenPtr *bool
		ignore                      []string
	)

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevelPtr = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		colorPtr = &v
	}
	if flags.Lookup("min-length") != nil {
		if flags.Changed("min-length") {
			v, _ := flags.GetInt("min-length")
			minLengthPtr = &v
		}
		if flags.Changed("strict-padding") {
			v, _ := flags.GetBool("strict-padding")
			strictPaddingPtr = &v
		}
		if flags.Changed("hidden") {
			v, _ := flags.GetBool("hidden")
			hiddenPtr = &v
		}
		ignore, _ = flags.GetStringSlice("ignore")
	}

	cfg.MergeWithFlags(logLevelPtr, colorPtr, minLengthPtr, strictPaddingPtr, hiddenPtr, ignore)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveDirs returns absolute paths for args, or the working directory.
func resolveDirs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	dirs := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", arg, err)
		}
		dirs = append(dirs, abs)
	}
	return dirs, nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
