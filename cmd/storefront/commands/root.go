package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/clients/fixture"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/storage/file"
	"github.com/jsamuelsen11/domain-storefront/internal/app"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/httpclient"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/logging"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

const defaultProfile = "local"

// env is the state shared by all commands of one invocation.
type env struct {
	profile   string
	configDir string
	override  string
	storePath string
	verbose   bool

	out    io.Writer
	errOut io.Writer
	sf     *app.Storefront
}

// Execute runs the storefront CLI against os.Args.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree. Output goes to out, logs and errors
// to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	e := &env{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Search domain names and keep a cart between runs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.open(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.profile, "profile", profile, "config profile (default $APP_PROFILE or local)")
	flags.StringVar(&e.configDir, "config-dir", "configs", "directory holding base.yaml and the profile yaml")
	flags.StringVar(&e.override, "config", "", "extra yaml layered over the profile")
	flags.StringVar(&e.storePath, "store", "", "cart file (default storage.file_path from config)")
	flags.BoolVarP(&e.verbose, "verbose", "v", false, "log at the configured level instead of warn")

	root.AddCommand(searchCmd(e), cartCmd(e), checkoutCmd(e))
	return root
}

func (e *env) open(ctx context.Context) error {
	cfg, err := config.Load(e.profile, config.WithConfigDir(e.configDir), config.WithOverrideFile(e.override))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logCfg := cfg.Log
	if !e.verbose {
		logCfg.Level = "warn"
	}
	logger := logging.New(logCfg, e.errOut)

	path := e.storePath
	if path == "" {
		path = cfg.Storage.FilePath
	}
	kv, err := file.Open(path)
	if err != nil {
		return fmt.Errorf("opening cart: %w", err)
	}

	e.sf = app.NewStorefront(
		newProvider(cfg, logger),
		app.NewCartStore(ctx, kv, logger),
		cart.NewPricePolicy(cfg.Storefront.TaxRate),
		app.StorefrontOptions{
			MinQueryLength: cfg.Storefront.MinQueryLength,
			Logger:         logger,
		},
	)
	return nil
}

func newProvider(cfg *config.Config, logger *slog.Logger) ports.AvailabilityProvider {
	if cfg.Storefront.Provider == config.ProviderRegistrar {
		client := httpclient.New(&cfg.Client, "registrar", nil, logger)
		return acl.NewRegistrarClient(client, cfg.Storefront.Suffixes, cfg.Client.MaxConcurrency, logger)
	}
	return fixture.New(cfg.Storefront.Suffixes)
}

// shopperError shows the storefront's message and keeps the cause for
// errors.Is.
type shopperError struct {
	msg string
	err error
}

func (e *shopperError) Error() string { return e.msg }
func (e *shopperError) Unwrap() error { return e.err }

// fail replaces err's text with the message the storefront now shows.
func (e *env) fail(ctx context.Context, err error) error {
	if msg := e.sf.State(ctx).Message; msg != "" {
		return &shopperError{msg: msg, err: err}
	}
	return err
}
