package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"schoolhub/internal/infrastructure/config"
	"schoolhub/internal/infrastructure/database"
	"schoolhub/internal/infrastructure/persistence/seeds"
	"schoolhub/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with initial data",
		Long:  `Populate the teacher registry with the initial staff accounts used for API authentication.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("seeding teacher registry", "environment", env)

	if err := seeds.SeedTeachers(database.Get()); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed successfully")
	return nil
}
