package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Rakhulsr/go-category-admin/app/configs"
	"github.com/Rakhulsr/go-category-admin/app/db/seeders"
	"github.com/Rakhulsr/go-category-admin/app/helpers"
	"github.com/Rakhulsr/go-category-admin/app/models/migrations"
	"github.com/Rakhulsr/go-category-admin/app/repositories"
	"github.com/Rakhulsr/go-category-admin/app/services"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func NewCommand(env configs.ENV, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "category-admin",
		Usage: "Category administration server and maintenance tasks",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, logger)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logger.Info("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Insert fake categories",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Usage: "number of categories to create",
						Value: 10,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, logger)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					svc := services.NewCategoryService(repositories.NewCategoryRepository(db), logger)
					created, err := seeders.DBSeed(ctx, svc, int(c.Int("count")))
					if err != nil {
						return err
					}
					logger.Info("Seeding complete", zap.Int("created", created))
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session and CSRF keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(c.Root().Writer, ".env.new_keys"); err != nil {
						return err
					}
					logger.Info("Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:      "hash-password",
				Usage:     "Print the bcrypt hash to use as ADMIN_PASSWORD_HASH",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, c *cli.Command) error {
					password := c.Args().First()
					if password == "" {
						return fmt.Errorf("password argument is required")
					}
					hash, err := helpers.HashPassword(password)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.Root().Writer, hash)
					return nil
				},
			},
		},
	}
}

func RunCli(env configs.ENV, logger *zap.Logger) {
	if err := NewCommand(env, logger).Run(context.Background(), os.Args); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}
