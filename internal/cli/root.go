package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/internal/api"
	"github.com/cinevo/cinevo-cli/internal/booking"
	"github.com/cinevo/cinevo-cli/internal/config"
	"github.com/cinevo/cinevo-cli/internal/guard"
	"github.com/cinevo/cinevo-cli/internal/logging"
	"github.com/cinevo/cinevo-cli/internal/persist"
	"github.com/cinevo/cinevo-cli/internal/state"
)

var (
	flagServer    string
	flagDataDir   string
	flagNoPersist bool
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger  *slog.Logger
	store   *state.Store
	storage persist.Storage
	client  *api.Client
	flow    *booking.Flow
)

// NewRootCmd creates the root cobra command for the cinevo CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cinevo",
		Short: "Cinevo — movie tickets from the terminal",
		Long:  "Cinevo browses the movie catalog, books tickets, and pays for them against the Cinevo service.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("server") {
				cfg.ServerURL = flagServer
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = flagDataDir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			logger = logging.New(cfg.LogLevel, cfg.LogFormat)

			store = state.New()
			if flagNoPersist {
				storage = persist.NewMemoryStorage()
			} else {
				if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
					return fmt.Errorf("create data directory: %w", err)
				}
				storage, err = persist.NewSQLiteStorage(cfg.DBPath(), logger)
				if err != nil {
					return err
				}
			}

			// Rehydrate before any command sees the store.
			persist.New(storage, logger).Bind(cmd.Context(), store)

			client = api.New(cfg.ServerURL, logger)
			if sess := store.Session(); sess.IsAuthenticated() {
				client = client.WithToken(sess.Token)
			}
			flow = booking.NewFlow(store, client, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if storage != nil {
				storage.Close()
			}
		},
		SilenceUsage: true,
	}

	defaults := config.Default()
	root.PersistentFlags().StringVar(&flagServer, "server", defaults.ServerURL, "Cinevo API URL (or CINEVO_SERVER env)")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", defaults.DataDir, "Local state directory (or CINEVO_DATA_DIR env)")
	root.PersistentFlags().BoolVar(&flagNoPersist, "no-persist", false, "Keep state in memory only")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", defaults.LogFormat, "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newRegisterCmd(),
		newForgotPasswordCmd(),
		newResetPasswordCmd(),
		newMoviesCmd(),
		newMovieCmd(),
		newBookCmd(),
		newSeatsCmd(),
		newPayCmd(),
		newTicketCmd(),
		newProfileCmd(),
		newHistoryCmd(),
		newAdminCmd(),
	)

	return root
}

// requireGuard evaluates the command guard against the current session and
// translates a redirect decision into a command error.
func requireGuard(req guard.Requirements) error {
	d := guard.Check(store.Session(), req)
	switch d.Path {
	case guard.LoginPath:
		return fmt.Errorf("you must log in first (run \"cinevo login\")")
	case guard.HomePath:
		return fmt.Errorf("admin access required")
	}
	return nil
}
