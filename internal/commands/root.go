package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie4/internal/buildinfo"
	"github.com/cleared-dev/sie4/internal/charset"
	"github.com/cleared-dev/sie4/internal/config"
	"github.com/cleared-dev/sie4/internal/diag"
	"github.com/cleared-dev/sie4/internal/sie"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	charset    string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "sie4",
		Short:   "Read SIE4 accounting files",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to "+config.FileName)
	pf.StringVar(&flags.logLevel, "log-level", "", "diagnostic level (debug, info, warn, error)")
	pf.StringVar(&flags.charset, "charset", "", "input charset (cp437, utf-8)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand(flags))
	rootCmd.AddCommand(newAccountsCommand(flags))
	rootCmd.AddCommand(newDimensionsCommand(flags))

	return rootCmd
}

// loadConfig reads --config, if given, and applies flag overrides.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.charset != "" {
		cfg.Parser.Charset = f.charset
	}
	return cfg, nil
}

// newLogger writes diagnostics to w at the configured level.
func newLogger(w io.Writer, cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "sie4",
	}), nil
}

// parseFile reads, decodes and parses a SIE file. Diagnostics go to stderr
// and are also returned.
func (f *globalFlags) parseFile(cmd *cobra.Command, path string) (*sie.Document, *diag.Recorder, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	src, err := charset.Decode(raw, cfg.Parser.Charset)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	rec := diag.NewRecorder(logger)
	doc, err := sie.NewFactory(cfg.Parser, rec).Parse(src)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, rec, nil
}
