package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alexxmihai24/alex-web-administrats/pkg/cli/config"
	httpctrl "github.com/alexxmihai24/alex-web-administrats/pkg/controller/http"
	"github.com/alexxmihai24/alex-web-administrats/pkg/service/retrieval"
	"github.com/alexxmihai24/alex-web-administrats/pkg/usecase"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var retrievalLimit int
	var useEmbedding bool
	var repoCfg config.Repository
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("ADMINISTRATS_ADDR"),
			Destination: &addr,
		},
		&cli.IntFlag{
			Name:        "retrieval-limit",
			Usage:       "Number of past exchanges injected into each prompt",
			Value:       3,
			Sources:     cli.EnvVars("ADMINISTRATS_RETRIEVAL_LIMIT"),
			Destination: &retrievalLimit,
		},
		&cli.BoolFlag{
			Name:        "embedding-retrieval",
			Usage:       "Score past exchanges by embedding similarity instead of lexical overlap (requires Gemini)",
			Sources:     cli.EnvVars("ADMINISTRATS_EMBEDDING_RETRIEVAL"),
			Destination: &useEmbedding,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient == nil {
				logging.Default().Warn("Gemini not configured, answers will use fallback text only")
			}

			ucOpts := []usecase.Option{
				usecase.WithRetrievalLimit(retrievalLimit),
			}
			if llmClient != nil {
				ucOpts = append(ucOpts, usecase.WithLLMClient(llmClient))
			}

			if useEmbedding {
				if llmClient == nil {
					return goerr.New("embedding-retrieval requires a configured Gemini client")
				}
				scorer, err := retrieval.NewEmbeddingScorer(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to create embedding scorer")
				}
				ucOpts = append(ucOpts, usecase.WithRetriever(retrieval.New(repo, scorer)))
				logging.Default().Info("Using embedding retrieval")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

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
