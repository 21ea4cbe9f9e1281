// Package cli implements the playfab command line tool.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fabforge/credstore"
	"fabforge/internal/config"
	"fabforge/internal/logs"
	"fabforge/playfab"
)

// App is the state shared by commands once configuration is loaded.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	client     *playfab.Client
	store      credstore.Store
	closeStore func() error

	configPath string
	output     string
}

// NewRootCommand builds the command tree. Commands fill a on start; call a.Close when done.
func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "playfab",
		Short:         "Call a PlayFab title from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")
	pf.String("title-id", "", "title id")
	pf.String("secret-key", "", "developer secret key")
	pf.String("endpoint-url", "", "override the service base URL")
	pf.Duration("timeout", 0, "per request timeout")
	pf.String("store", "", "credential store: file, redis or memory")
	pf.String("profile", "", "key the credentials are stored under")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-file", "", "write logs to a rotated file")

	root.AddCommand(
		newEndpointsCommand(a),
		newCallCommand(a),
		newLoginCommand(a),
		newTokenCommand(a),
		newLogoutCommand(a),
	)
	return root
}

// Execute runs the tool and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &App{}
	defer a.Close()

	root := NewRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func (a *App) setup(cmd *cobra.Command) error {
	if a.output != "json" && a.output != "yaml" {
		return errors.Errorf("unknown output format %q", a.output)
	}

	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logs.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	store, closeStore, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.store, a.closeStore = cfg, logger, store, closeStore

	holder := playfab.NewCredentialHolder(nil)
	restored, err := credstore.Restore(cmd.Context(), store, cfg.Credentials.Key, holder)
	if err != nil {
		return errors.WithMessage(err, "restore credentials")
	}
	logger.Debug("configuration loaded",
		zap.String("title_id", cfg.TitleID),
		zap.String("store", cfg.Credentials.Store),
		zap.String("profile", cfg.Credentials.Key),
		zap.Bool("restored", restored))

	a.client = playfab.NewClient(cfg.Settings(logger), playfab.WithCredentials(holder))
	return nil
}

// saveCredentials persists the client's current credentials under the configured profile.
func (a *App) saveCredentials(ctx context.Context) error {
	ac := a.client.Credentials().Load()
	if err := a.store.Save(ctx, a.cfg.Credentials.Key, ac); err != nil {
		return errors.WithMessage(err, "save credentials")
	}
	return nil
}

// Close flushes logs and releases the credential store.
func (a *App) Close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.closeStore != nil {
		_ = a.closeStore()
	}
}
