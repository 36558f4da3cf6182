package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alexxmihai24/alex-web-administrats/pkg/cli/config"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
	"github.com/alexxmihai24/alex-web-administrats/pkg/usecase"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/logging"
)

func cmdAsk() *cli.Command {
	var scopeKey string
	var repoCfg config.Repository
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "scope",
			Usage:       "Scope key of the procedure to ask about (e.g. sepe)",
			Required:    true,
			Sources:     cli.EnvVars("ADMINISTRATS_ASK_SCOPE"),
			Destination: &scopeKey,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:      "ask",
		Aliases:   []string{"a"},
		Usage:     "Ask a one-shot question about a procedure",
		ArgsUsage: "<question>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if question == "" {
				return goerr.New("question is required")
			}

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

			var ucOpts []usecase.Option
			if llmClient != nil {
				ucOpts = append(ucOpts, usecase.WithLLMClient(llmClient))
			}
			uc := usecase.New(repo, ucOpts...)

			reply, err := uc.Chat(ctx, model.ChatInput{
				Message:  question,
				ScopeKey: types.ScopeKey(scopeKey),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to answer question", goerr.V("scope_key", scopeKey))
			}

			color.New(color.FgCyan, color.Bold).Printf("%s\n", reply.ProcedureName)
			if reply.Retrieval.Used {
				color.New(color.FgHiBlack).Printf("(con %d consultas anteriores como contexto)\n", reply.Retrieval.MatchCount)
			}
			fmt.Println()
			fmt.Println(reply.Response)

			return nil
		},
	}
}
