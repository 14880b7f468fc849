package main

import (
	"context"
	"fmt"

	"baladiya/internal/db"
	"baladiya/internal/seed"
	"baladiya/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Apply the schema and seed the database with demo data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		if err := db.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}

		userRepo := store.NewUserRepository(pool)
		requestRepo := store.NewRequestRepository(pool)
		reportRepo := store.NewReportRepository(pool)
		announcementRepo := store.NewAnnouncementRepository(pool)
		sessionRepo := store.NewSessionRepository(pool)

		logrus.Info("Seeding users...")
		users, err := seed.Users(ctx, userRepo)
		if err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		logrus.Info("Seeding sample data...")
		if err := seed.Samples(ctx, users, requestRepo, reportRepo, announcementRepo); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}

		if err := sessionRepo.DeleteExpired(ctx); err != nil {
			return fmt.Errorf("failed to sweep expired sessions: %w", err)
		}

		logrus.Info("Seed complete")

		return nil
	},
}
