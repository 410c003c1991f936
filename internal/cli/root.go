// Package cli wires the command line: the default command opens the desktop
// catalogue, the others query the remote endpoint for scripting.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comfort-hq/digital-catalogue/internal/config"
	"github.com/comfort-hq/digital-catalogue/internal/gateway"
	"github.com/comfort-hq/digital-catalogue/internal/logging"
)

// Version is set during build via -ldflags "-X github.com/comfort-hq/digital-catalogue/internal/cli.Version=X.Y.Z"
var Version = "dev"

// Exit codes
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ValidFormats are the output formats of the query commands
var ValidFormats = []string{"text", "json"}

// RootOptions holds the global flags and what PersistentPreRunE builds from them
type RootOptions struct {
	ConfigPath string
	Endpoint   string
	Verbose    bool
	Format     string

	Config config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the catalogue command tree
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "catalogue",
		Short:         "Comfort Digital Catalogue",
		Long:          "Browse and edit the Comfort product catalogue stored behind a remote spreadsheet endpoint.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.Endpoint, "endpoint", "", "remote endpoint URL, overrides the config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format of query commands (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewSettingsCommand(opts))

	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return exitCode(err)
	}
	return ExitSuccess
}

// prepare loads the config, applies flag overrides and builds the logger
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return &commandError{fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)}
	}

	path := o.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &commandError{err}
	}
	if o.Endpoint != "" {
		cfg.Endpoint = o.Endpoint
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoEndpoint) {
			return &commandError{fmt.Errorf("%w: set endpoint in %s or pass --endpoint", err, path)}
		}
		return &commandError{err}
	}
	o.Config = cfg

	if o.Logger == nil {
		logger, err := logging.New(cfg.LogLevel, cfg.LogFile, o.Verbose)
		if err != nil {
			return &commandError{err}
		}
		o.Logger = logger
	}
	o.Logger.Debug("Configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", path),
		zap.String("endpoint", cfg.Endpoint))
	return nil
}

// client creates the gateway client for the configured endpoint
func (o *RootOptions) client() *gateway.Client {
	return gateway.NewClient(o.Config.Endpoint, gateway.Options{
		Timeout: o.Config.RequestTimeout,
		Logger:  o.Logger,
	})
}

// commandError marks failures caused by the invocation rather than the remote side
type commandError struct {
	err error
}

func (e *commandError) Error() string { return e.err.Error() }

func (e *commandError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return ExitCommandError
	}
	return ExitFailure
}
