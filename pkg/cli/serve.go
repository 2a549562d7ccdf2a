package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/taskmine/pkg/cli/config"
	httpctrl "github.com/secmon-lab/taskmine/pkg/controller/http"
	"github.com/secmon-lab/taskmine/pkg/service/extract"
	"github.com/secmon-lab/taskmine/pkg/usecase"
	"github.com/secmon-lab/taskmine/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var llmTimeout time.Duration
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var rulesCfg config.Rules

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TASKMINE_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Timeout for a single LLM extraction call",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("TASKMINE_LLM_TIMEOUT"),
			Destination: &llmTimeout,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, rulesCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Load the extraction ruleset
			ruleset, err := rulesCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load extraction ruleset")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// Initialize use cases; the LLM tier is optional
			ucOpts := []usecase.Option{
				usecase.WithHeuristic(extract.NewHeuristic(ruleset)),
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize Gemini client")
			}
			if llmClient != nil {
				ucOpts = append(ucOpts, usecase.WithLLM(
					extract.NewLLM(llmClient, extract.WithTimeout(llmTimeout)),
				))
				logging.Default().Info("LLM extraction enabled", "timeout", llmTimeout)
			} else {
				logging.Default().Info("Gemini project not configured, LLM extraction will fall back to heuristics")
			}

			uc := usecase.New(repo, ucOpts...)

			// Create HTTP server
			httpHandler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
