package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/app"
	"github.com/abhisek/mathcoach/internal/coachnote"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/reports"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the practice app",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, _ := cmd.Flags().GetString("profile")
		return runPlay(cmd, profile)
	},
}

func init() {
	playCmd.Flags().String("profile", "", "Open this profile's dashboard directly")
}

func runPlay(cmd *cobra.Command, profileID string) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// The alt screen owns stdout, so log lines go to a file.
	logPath := logFilePath(cfg.DBPath)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := newLogger(cfg, logFile, logFile)
	logger.SetDefault(log)

	// Coach notes are optional; the app works without a provider.
	var provider llm.Provider
	if p, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo(), log); err != nil {
		log.Test("LLM provider not configured", "error", err)
	} else {
		provider = p
	}

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = os.TempDir()
	}

	deps := &screens.Deps{
		Tasks:     tasks.FromStore(st, log),
		Reports:   reports.FromStore(st, log),
		Notes:     coachnote.New(provider, coachnote.DefaultConfig()),
		Log:       log,
		Grid:      facts.Grid15,
		ExportDir: exportDir,
	}
	log.Prd("App started", "db", cfg.DBPath, "notes", deps.Notes.Enabled())
	return app.Run(app.Options{Deps: deps, ProfileID: profileID})
}

// logFilePath places mathcoach.log beside a SQLite file, or in the data
// directory for other DSNs.
func logFilePath(dsn string) string {
	if dsn != "" && !store.IsPostgresDSN(dsn) && !store.IsFileURIDSN(dsn) {
		return filepath.Join(filepath.Dir(dsn), "mathcoach.log")
	}
	if p, err := store.DefaultDBPath(); err == nil {
		return filepath.Join(filepath.Dir(p), "mathcoach.log")
	}
	return filepath.Join(os.TempDir(), "mathcoach.log")
}
