package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"study-planner.com/study-planner/internal/catalog"
	config "study-planner.com/study-planner/internal/configs"
	repository "study-planner.com/study-planner/internal/repositories"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled template catalog into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)
		templateRepo := repository.NewTemplateRepository(database)

		templates := catalog.Templates()
		if err := templateRepo.Seed(context.Background(), templates); err != nil {
			return err
		}

		log.Printf("seeded %d templates", len(templates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
