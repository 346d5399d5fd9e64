package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/config"
	"github.com/orderdesk/orderdesk/internal/adapters/outbound/httpapi"
	"github.com/orderdesk/orderdesk/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	baseURL    string
	configPath string
	verbose    bool
}

// session is the wiring a command needs to talk to the API.
type session struct {
	cfg    domain.ClientConfig
	api    *httpapi.Client
	logger *log.Logger
}

func (g *globalFlags) session(cmd *cobra.Command) (*session, error) {
	logger := newLogger(cmd, g.verbose)

	loader := config.New()
	var (
		cfg domain.ClientConfig
		err error
	)
	if g.configPath != "" {
		cfg, err = loader.LoadFile(g.configPath)
	} else {
		cfg, err = loader.Load(".")
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if g.baseURL != "" {
		cfg.BaseURL = g.baseURL
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--base-url: %w", err)
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "orderdesk/" + version
	}
	logger.Debug("config resolved", "base_url", cfg.BaseURL, "page_size", cfg.PageSize)

	return &session{
		cfg:    cfg,
		api:    httpapi.New(cfg, httpapi.WithLogger(logger)),
		logger: logger,
	}, nil
}

func newLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "orderdesk",
		ReportTimestamp: verbose,
		Level:           level,
	})
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "orderdesk",
		Short:         "Order-management admin client",
		Long:          "orderdesk browses products and orders, creates orders and charts daily sales against an order-management API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "API base URL (overrides config file and $"+config.EnvBaseURL+")")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ./"+config.FileName+")")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log every API request to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newHealthCmd(flags))
	cmd.AddCommand(newProductsCmd(flags))
	cmd.AddCommand(newProductCmd(flags))
	cmd.AddCommand(newCategoriesCmd(flags))
	cmd.AddCommand(newOrdersCmd(flags))
	cmd.AddCommand(newOrderCmd(flags))
	cmd.AddCommand(newCreateOrderCmd(flags))
	cmd.AddCommand(newUsersCmd(flags))
	cmd.AddCommand(newAnalyticsCmd(flags))
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. Errors already shown to the user by a command are
// not printed a second time.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	var se *shownError
	if err != nil && !errors.As(err, &se) {
		fmt.Fprintln(os.Stderr, "Error:", domain.MessageOf(err))
	}
	return err
}

// shownError marks an error whose message the command already rendered.
type shownError struct{ err error }

func (e *shownError) Error() string { return e.err.Error() }
func (e *shownError) Unwrap() error { return e.err }

func shown(err error) error {
	if err == nil {
		return nil
	}
	return &shownError{err: err}
}
