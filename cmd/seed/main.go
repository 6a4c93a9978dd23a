package main

import (
	"context"
	"fmt"
	"greenmind/internal/config"
	"greenmind/internal/repository"
	"greenmind/internal/service"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load GreenMind fixtures into MongoDB",
	}

	rootCmd.AddCommand(
		newUsersCmd(),
		newModelsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newUsersCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Upsert the survey population from a YAML file",
		Long: `Upsert users into the users collection. Existing users with the same id are replaced.

Example: seed users --file cmd/seed/fixtures/population.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := loadPopulation(file)
			if err != nil {
				return err
			}

			return withDatabase(cmd.Context(), func(ctx context.Context, db *mongo.Database) error {
				n, err := repository.NewUserRepo(db).UpsertMany(ctx, users)
				if err != nil {
					return fmt.Errorf("upsert users: %w", err)
				}
				fmt.Printf("Upserted %d of %d users\n", n, len(users))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "cmd/seed/fixtures/population.yaml", "Population YAML file")
	return cmd
}

func newModelsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Create OCEAN behavior models from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := loadModels(file)
			if err != nil {
				return err
			}

			return withDatabase(cmd.Context(), func(ctx context.Context, db *mongo.Database) error {
				// template cache is only touched on update/delete
				svc := service.NewBehaviorModelService(repository.NewBehaviorModelRepo(db), nil)
				for i := range models {
					if err := svc.Create(ctx, &models[i]); err != nil {
						return fmt.Errorf("create model %q: %w", models[i].Name, err)
					}
					fmt.Printf("Created %s (%s) %s\n", models[i].Name, models[i].Trait, models[i].ID)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "cmd/seed/fixtures/models.yaml", "Behavior model YAML file")
	return cmd
}

func withDatabase(parent context.Context, fn func(ctx context.Context, db *mongo.Database) error) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer client.Disconnect(ctx)

	log.Printf("Seeding database %s", cfg.MongoDatabase)
	return fn(ctx, client.Database(cfg.MongoDatabase))
}
