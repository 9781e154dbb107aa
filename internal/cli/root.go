// Package cli contains all commands of the taskdeck CLI.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goodtodo/taskdeck/internal/config"
	"github.com/goodtodo/taskdeck/internal/output"
	"github.com/goodtodo/taskdeck/pkg/logger"
	"github.com/goodtodo/taskdeck/repository"
	boltrepo "github.com/goodtodo/taskdeck/repository/bolt"
	"github.com/goodtodo/taskdeck/repository/rest"
	"github.com/goodtodo/taskdeck/usecase/session"
	"github.com/goodtodo/taskdeck/usecase/viewsync"
)

var (
	verbose bool
	noColor bool
	apiURL  string
)

// app wires the session store, the REST repositories and the view
// synchronizer together for the lifetime of one command.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	printer *output.Printer

	creds   *boltrepo.Store
	session *session.Store
	auth    repository.AuthAPI
	users   repository.UserAPI

	sync   *viewsync.Synchronizer
	mine   *viewsync.View
	public *viewsync.View
}

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Multi-tenant task tracking from the terminal",
	Long: `taskdeck is a client for the Good Todo task service.

Authenticate against your organization once, then create, view,
toggle and share tasks. Team-visible tasks of other members show up
under 'taskdeck list --public'.

Example usage:
  taskdeck login --tenant acme --email a@x.com
  taskdeck add --title "write report" --due 2026-09-05
  taskdeck list --all
  taskdeck done 4f2a
  taskdeck share 4f2a`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "task service base URL (overrides TASKDECK_API_URL)")
}

// newApp loads configuration, opens the credential store and restores
// the persisted session. The caller must close the returned app.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if verbose {
		cfg.Logger.Level = "debug"
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	creds, err := boltrepo.Open(cfg.State.Path, cfg.State.Bucket)
	if err != nil {
		return nil, fmt.Errorf("open state file %s: %w", cfg.State.Path, err)
	}

	store := session.New(creds, zapLogger)
	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store.AccessToken, zapLogger)

	a := &app{
		cfg:     cfg,
		logger:  zapLogger,
		printer: output.NewPrinter(!noColor),
		creds:   creds,
		session: store,
		auth:    rest.NewAuthRepository(client),
		users:   rest.NewUserRepository(client),
	}

	a.sync = viewsync.New(rest.NewTaskRepository(client), cfg.Sync.RefreshTimeout, zapLogger)
	a.mine, a.public = a.sync.RegisterTaskViews()

	if _, err := store.Restore(ctx); err != nil {
		creds.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) close() {
	if a == nil {
		return
	}
	if a.creds != nil {
		a.creds.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// requireAuth fails fast when no identity is present, routing the user
// to the login flow.
func (a *app) requireAuth() error {
	if a.session.IsAuthenticated() {
		return nil
	}
	return fmt.Errorf("not logged in, run 'taskdeck login' first")
}
