package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// SettingsLoader opens the settings stored in configDir.
type SettingsLoader func(configDir string) (driving.SettingsService, error)

var (
	searchService  driving.SearchService
	settingsLoader SettingsLoader

	// lookupEnv is replaced in tests.
	lookupEnv = os.LookupEnv
)

var (
	verboseFlag bool
	colorFlag   string
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "minigrep <query> <filename> [ln]",
	Short: "Print the lines of a file that contain a query",
	Long: `Searches a single file for lines containing the query string and prints them.

Matching is a plain substring test and is case-insensitive unless the
CASE_SENSITIVE environment variable is set (to any value).
Pass "ln" as the third argument to prefix each line with its line number.`,
	Example: `  minigrep to poem.txt
  minigrep body poem.txt ln
  CASE_SENSITIVE=1 minigrep To poem.txt > matches.txt`,
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: configureDiagnostics,
	RunE:              runSearch,
}

func init() {
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug output to stderr")
	rootCmd.Flags().StringVar(&colorFlag, "color", string(domain.ColorAuto), "colour diagnostics: auto, always or never")
	rootCmd.Flags().StringVar(&configDir, "config-dir", "", "settings directory (default ~/.minigrep)")
	// Every first argument is a query, so cobra must not claim "completion".
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
}

// SetSearchService sets the service used to run searches.
func SetSearchService(svc driving.SearchService) {
	searchService = svc
}

// SetSettingsLoader sets how settings are opened once --config-dir is known.
func SetSettingsLoader(loader SettingsLoader) {
	settingsLoader = loader
}

// Execute runs the root command with args, writing results to stdout
// and diagnostics to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// nil would make cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

// UsageLine returns the one-line usage summary.
func UsageLine() string {
	return "Usage: " + rootCmd.UseLine()
}

// configureDiagnostics resolves settings file values and flags into the
// logger configuration. Flags win over the settings file.
func configureDiagnostics(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())

	settings := domain.DefaultSettings()
	if settingsLoader != nil {
		loaded, err := loadSettings()
		if err != nil {
			logger.Notice("Ignoring settings: %v", err)
		} else {
			settings = *loaded
		}
	}

	if cmd.Flags().Changed("color") {
		mode, ok := domain.ParseColorMode(colorFlag)
		if !ok {
			return &UsageError{Err: fmt.Errorf(`%w: --color must be "auto", "always" or "never", got %q`,
				domain.ErrInvalidInput, colorFlag)}
		}
		settings.Color = mode
	}
	if cmd.Flags().Changed("verbose") {
		settings.Verbose = verboseFlag
	}

	logger.SetColorMode(settings.Color)
	logger.SetVerbose(settings.Verbose)
	logger.Debug("Color: %s, verbose: %t", settings.Color, settings.Verbose)
	return nil
}

func loadSettings() (*domain.Settings, error) {
	svc, err := settingsLoader(configDir)
	if err != nil {
		return nil, err
	}
	return svc.Get()
}

func runSearch(cmd *cobra.Command, args []string) error {
	filename, cfg, err := ParseConfig(args, lookupEnv)
	if err != nil {
		return err
	}

	if searchService == nil {
		return errors.New("search service not configured")
	}

	output, err := searchService.Run(cmd.Context(), filename, cfg)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), output)
	return err
}
