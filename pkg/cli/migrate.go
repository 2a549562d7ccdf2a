package cli

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/repository/sqlite"
	"github.com/secmon-lab/taskmine/pkg/utils/logging"
	"github.com/urfave/cli/v3"

	_ "modernc.org/sqlite"
)

func cmdMigrate() *cli.Command {
	var dbPath string

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Apply the SQLite schema and exit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "sqlite-path",
				Usage:       "Path to the SQLite database file",
				Value:       "taskmine.db",
				Sources:     cli.EnvVars("TASKMINE_SQLITE_PATH"),
				Destination: &dbPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			logger.Info("Applying schema", "path", dbPath)

			db, err := sql.Open("sqlite", dbPath)
			if err != nil {
				return goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", dbPath))
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Error("failed to close database", "error", err.Error())
				}
			}()

			if err := sqlite.Migrate(db); err != nil {
				return goerr.Wrap(err, "migration failed")
			}

			logger.Info("Schema applied")
			return nil
		},
	}
}
