package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/thegreatco/pingme/config"
	"github.com/thegreatco/pingme/filter"
	"github.com/thegreatco/pingme/opsmngr"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *opsmngr.Client

	// Command flags
	filterExpr string
	preset     string
	groupID    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pingme",
	Short: "A tool to inspect MongoDB Ops Manager and Cloud Manager deployments",
	Long: `pingme is a CLI tool for the MongoDB Ops Manager / Cloud Manager Public API.
It lists groups, hosts, agents, clusters and alerts, filters them with
expressions, and exports deployment state to JSON files.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build metadata for --version and the API user agent.
func SetVersion(version, buildTime string) {
	opsmngr.Version = version
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	variant, err := opsmngr.ParseVariant(cfg.OpsManager.Variant)
	if err != nil {
		return fmt.Errorf("invalid opsmanager.variant: %w", err)
	}

	opts := []opsmngr.Option{opsmngr.WithVariant(variant)}
	if cfg.OpsManager.Timeout > 0 {
		opts = append(opts, opsmngr.WithTimeout(cfg.OpsManager.Timeout))
	}

	client, err = opsmngr.NewClient(cfg.OpsManager.URL, cfg.OpsManager.Username, cfg.OpsManager.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilter compiles the filter from the command line or a config preset.
// A nil filter means no filtering.
func getFilter() (*filter.Filter, error) {
	expr := filterExpr
	if expr == "" && preset != "" {
		presetExpr, ok := cfg.Filter[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expr = presetExpr
	}

	if expr == "" {
		return nil, nil
	}

	f, err := filter.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// applyFilter narrows docs with the compiled filter, passing all through when nil
func applyFilter(f *filter.Filter, docs []opsmngr.Entity) []opsmngr.Entity {
	if f == nil {
		return docs
	}
	return f.Apply(docs)
}
