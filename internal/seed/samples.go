package seed

import (
	"context"
	"fmt"

	"baladiya/internal/store"
	"baladiya/internal/utils"
	"baladiya/pkg/types"
)

// Samples populates a couple of rows per entity so a fresh install can
// demo the workflow. Skipped entirely when the citizen already has
// requests.
func Samples(
	ctx context.Context,
	users map[string]*types.User,
	requestRepo *store.RequestRepository,
	reportRepo *store.ReportRepository,
	announcementRepo *store.AnnouncementRepository,
) error {
	citizen, ok := users["AB123456"]
	if !ok {
		return fmt.Errorf("seed citizen missing")
	}

	existing, err := requestRepo.RequestsByUser(ctx, citizen.ID)
	if err != nil {
		return fmt.Errorf("failed to check for existing sample requests: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, docType := range []string{"Birth Certificate", "Residence Certificate"} {
		if _, err := requestRepo.Create(ctx, &types.Request{
			UserID: citizen.ID,
			Type:   docType,
		}); err != nil {
			return fmt.Errorf("failed to create sample request: %w", err)
		}
	}

	sampleReport := &types.Report{
		UserID:      citizen.ID,
		Category:    "Road",
		Location:    "Avenue Habib Bourguiba",
		Description: utils.StringPtr("Large pothole near the main intersection"),
	}
	if _, err := reportRepo.Create(ctx, sampleReport); err != nil {
		return fmt.Errorf("failed to create sample report: %w", err)
	}

	welcome := &types.Announcement{
		Title:   "Welcome to Smart Baladiya",
		Content: "Submit document requests and report infrastructure issues online.",
	}
	if _, err := announcementRepo.Create(ctx, welcome); err != nil {
		return fmt.Errorf("failed to create welcome announcement: %w", err)
	}

	return nil
}
