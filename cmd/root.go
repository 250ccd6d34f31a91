package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/config"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathcoach",
	Short: "Timed multiplication practice for students and coaches",
	Long: "Math Coach builds timed times-table tasks from a grid of facts, " +
		"runs them in train or test mode and grades each attempt against the task's thresholds.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, "")
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite path or postgres:// URL (overrides MATHCOACH_DB and DATABASE_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log tier: DEV, TEST or PRD (overrides LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath, cfg.DatabaseURL = p, ""
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	return cfg
}

// resolveDBPath returns the database DSN using --db (highest priority),
// then DATABASE_URL / MATHCOACH_DB, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if dsn := cfg.DSN(); dsn != "" {
		return dsn, store.EnsureDir(dsn)
	}
	return store.DefaultDBPath()
}

// openStore resolves configuration and opens the database.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg := loadConfig(cmd)
	dsn, err := resolveDBPath(cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve database path: %w", err)
	}
	cfg.DBPath = dsn
	st, err := store.Open(dsn)
	if err != nil {
		return nil, cfg, fmt.Errorf("open database: %w", err)
	}
	return st, cfg, nil
}

// newLogger builds a logger at the configured tier. Nil writers mean
// stdout and stderr.
func newLogger(cfg config.Config, out, errOut io.Writer) *logger.Logger {
	opts := logger.Options{Out: out, Err: errOut}
	if l, ok := logger.ParseLevel(cfg.LogLevel); ok {
		opts.Level = l
	} else if cfg.Env == config.EnvDevelopment {
		opts.Level = logger.LevelDev
	}
	return logger.New(opts)
}
