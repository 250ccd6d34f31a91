package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/api"
	"github.com/abhisek/mathcoach/internal/coachnote"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/maintenance"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		log := newLogger(cfg, nil, nil)
		logger.SetDefault(log)

		addr := cfg.HTTPAddr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		opts := api.Options{CORSOrigins: cfg.CORSOrigins}
		if p, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo(), log); err != nil {
			log.Test("LLM provider not configured", "error", err)
		} else {
			opts.Notes = coachnote.New(p, coachnote.DefaultConfig())
		}

		pruner := maintenance.NewPruner(st.EventRepo(), cfg.LLMRetention, log)
		if err := pruner.Start(); err != nil {
			return fmt.Errorf("schedule prune: %w", err)
		}
		defer pruner.Stop()

		srv := &http.Server{
			Addr:              addr,
			Handler:           api.FromStore(st, log, opts).Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Prd("API listening", "addr", addr, "dialect", st.Dialect())
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		case <-cmd.Context().Done():
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Prd("API shutting down")
		return srv.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MATHCOACH_ADDR)")
}
