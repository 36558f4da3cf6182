package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alexxmihai24/alex-web-administrats/pkg/cli/config"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/logging"
)

func cmdSeed() *cli.Command {
	var catalogPath string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to the TOML procedure catalog",
			Required:    true,
			Sources:     cli.EnvVars("ADMINISTRATS_CATALOG"),
			Destination: &catalogPath,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load the procedure catalog into the repository",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := config.LoadCatalog(catalogPath)
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog", goerr.V("path", catalogPath))
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

			for _, entry := range catalog.Procedures {
				procedure := entry.ToDomain()
				if err := repo.Procedure().Put(ctx, procedure); err != nil {
					return goerr.Wrap(err, "failed to store procedure", goerr.V("scope_key", procedure.ScopeKey))
				}
				logging.Default().Info("Stored procedure",
					"scope_key", procedure.ScopeKey,
					"name", procedure.Name,
				)
			}

			logging.Default().Info("Catalog loaded", "procedures", len(catalog.Procedures))
			return nil
		},
	}
}
