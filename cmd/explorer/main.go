// Package main provides the explorer command that normalizes, filters and
// reshapes listing data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zexplorer/internal/config"
	"zexplorer/internal/fileio"
	"zexplorer/internal/formatter"
	"zexplorer/internal/logger"
	"zexplorer/internal/normalizer"
)

const (
	defaultInputPath    = "data/inputs.sample.json"
	defaultOutputPath   = "data/example_output.json"
	defaultSettingsPath = "config/settings.yaml"
)

type options struct {
	inputFile    string
	outputFile   string
	settingsFile string
	logLevel     string
	preview      int
	pretty       bool
	force        bool
}

func main() {
	config.LoadEnv()

	os.Exit(runCommand(context.Background(), newRootCmd()))
}

// runCommand executes cmd and returns the process exit code. Failures are
// logged at error level on the command's error stream.
func runCommand(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		log := logger.NewLoggerWithWriter(cmd.ErrOrStderr(), "error")
		log.Error("Command failed", "error", err)

		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "explorer",
		Short:         "Normalize, filter and reshape property listings",
		Long:          `The explorer command reads a JSON array of listings, maps every record onto the canonical listing shape, applies the configured filters, projection and cleansing, and writes the result as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.settingsFile, "config", "c", "", "Path to the settings file (default $"+config.EnvSettingsPath+" or "+defaultSettingsPath+")")
	rootCmd.Flags().StringVarP(&opts.inputFile, "input-file", "i", defaultInputPath, "Path to the input JSON file")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output-file", "o", defaultOutputPath, "Path to write the output JSON")
	rootCmd.Flags().BoolVar(&opts.pretty, "pretty", true, "Pretty-print the output JSON")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().IntVar(&opts.preview, "preview", 0, "Print a markdown table of the first N output records")

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitConfig(cmd, opts)
		},
	}
	initCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing settings file")

	rootCmd.AddCommand(initCmd)

	return rootCmd
}

func runPipeline(cmd *cobra.Command, opts *options) error {
	log := logger.NewLoggerWithWriter(cmd.ErrOrStderr(), "info")

	settings, err := loadSettings(cmd, opts, log)
	if err != nil {
		return err
	}

	log.SetLevel(settings.Logging.Level)
	log.Debug("Loaded settings", "settings", settings.String())

	input, err := fileio.LoadRecords(opts.inputFile)
	if err != nil {
		return err
	}

	processor := normalizer.NewProcessor(settings, log)

	records, err := processor.Process(input)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	pretty := settings.Output.PrettyPrint
	if cmd.Flags().Changed("pretty") {
		pretty = opts.pretty
	}

	if err := fileio.SaveRecords(opts.outputFile, records, pretty); err != nil {
		return err
	}

	log.Info("Saved output", "path", opts.outputFile, "records", len(records), "pretty", pretty)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d records to %s\n", len(records), opts.outputFile)

	rows := settings.Output.PreviewRows
	if cmd.Flags().Changed("preview") {
		rows = opts.preview
	}

	if rows > 0 && len(records) > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.PreviewTable(records, previewColumns(settings), rows, formatter.DefaultCellWidth))
	}

	return nil
}

// loadSettings resolves the settings file and layers environment and flag
// overrides on top. A missing file falls back to the defaults.
func loadSettings(cmd *cobra.Command, opts *options, log *logger.Logger) (*config.Settings, error) {
	path := opts.settingsFile
	if path == "" {
		path = config.SettingsPath(defaultSettingsPath)
	}

	settings, err := config.LoadSettings(path)

	switch {
	case errors.Is(err, config.ErrSettingsNotFound):
		log.Warn("Settings file not found, using defaults", "path", path)

		settings = config.DefaultSettings()
	case err != nil:
		return nil, err
	default:
		log.Debug("Loaded settings file", "path", path)
	}

	settings.ApplyEnv()

	if cmd.Flags().Changed("log-level") {
		settings.Logging.Level = opts.logLevel
	}

	if cmd.Flags().Changed("preview") && opts.preview < 0 {
		return nil, config.ErrInvalidPreviewRows
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return settings, nil
}

// previewColumns shows the projected fields under their output names, or the
// default columns when every field is kept.
func previewColumns(settings *config.Settings) []formatter.Column {
	if len(settings.Transform.IncludeFields) == 0 {
		return formatter.DefaultColumns
	}

	cols := formatter.ColumnsFor(settings.Transform.IncludeFields)

	for _, r := range settings.Transform.FieldMapping {
		for i := range cols {
			if cols[i].Path == r.From {
				cols[i] = formatter.Column{Header: r.To, Path: r.To}
			}
		}
	}

	return cols
}

func runInitConfig(cmd *cobra.Command, opts *options) error {
	path := opts.settingsFile
	if path == "" {
		path = config.SettingsPath(defaultSettingsPath)
	}

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("settings file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.DefaultSettings().SaveSettings(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", path)

	return nil
}
