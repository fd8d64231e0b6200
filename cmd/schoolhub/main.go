package main

import (
	"os"

	"github.com/spf13/cobra"

	"schoolhub/internal/interfaces/cli/migrate"
	"schoolhub/internal/interfaces/cli/seed"
	"schoolhub/internal/interfaces/cli/server"
)

// @title SchoolHub Announcements API
// @version 1.0
// @description School announcement board with teacher-authenticated management endpoints.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "schoolhub",
		Short: "SchoolHub - school announcement service",
		Long:  `SchoolHub serves the school announcement board along with migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
