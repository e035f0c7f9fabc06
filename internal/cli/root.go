package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Fsince94/PortfolioApp/internal/cart"
	"github.com/Fsince94/PortfolioApp/internal/config"
	"github.com/Fsince94/PortfolioApp/internal/kvstore"
	"github.com/Fsince94/PortfolioApp/internal/service"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	StorePath  string // overrides config when set
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the portfolio CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio data service",
		Long:  "Manage the portfolio catalog, blog, orders and cart backed by an embedded SQLite snapshot store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			logLevel := slog.LevelWarn
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.StorePath, "store", "", "path to the snapshot store (overrides config)")

	// Add subcommands
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewProjectsCommand(opts))
	cmd.AddCommand(NewPostsCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// App bundles the wired service layer for a single command invocation.
type App struct {
	Config  *config.Config
	Store   *kvstore.Store
	Service *service.Service
	Cart    *cart.Cart
}

// Close releases the embedded database.
func (a *App) Close() {
	if a.Service != nil {
		_ = a.Service.Close()
	}
}

// openApp loads configuration and wires the store, service and cart.
func openApp(opts *RootOptions) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	storePath := cfg.StoragePath
	if opts.StorePath != "" {
		storePath = opts.StorePath
	}
	kv, err := kvstore.Open(storePath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open snapshot store", err)
	}
	svc := service.New(kv, service.WithSeedLanguage(cfg.Language))
	return &App{
		Config:  cfg,
		Store:   kv,
		Service: svc,
		Cart:    cart.New(kv, svc, cart.WithCheckoutDelay(cfg.CheckoutDelay)),
	}, nil
}

// requireSession guards admin mutations behind the login gate.
func requireSession(app *App) error {
	if !app.Service.AuthSession() {
		return NewExitError(ExitFailure, "not logged in: run `portfolio login` first")
	}
	return nil
}
