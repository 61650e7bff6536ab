package services

import (
	"context"
	"strings"
	"testing"

	"perkhub/internal/models"
)

func TestReplaceCatalog_LockedRequiresNote(t *testing.T) {
	service := &ServiceDeal{}

	payloads := []models.DealPayload{
		{
			Title:          "HubSpot CRM Pro",
			Description:    "Get 50% off HubSpot CRM Pro for the first year",
			Category:       models.CategorySales,
			PartnerName:    "HubSpot",
			AccessLevel:    models.AccessLevelPublic,
			BenefitDetails: "50% discount for 12 months",
		},
		{
			Title:          "AWS Credits",
			Description:    "$10,000 in AWS credits for early-stage startups",
			Category:       models.CategoryDevelopment,
			PartnerName:    "Amazon Web Services",
			AccessLevel:    models.AccessLevelLocked,
			BenefitDetails: "$10,000 in AWS credits valid for 2 years",
		},
	}

	_, err := service.ReplaceCatalog(context.Background(), payloads)
	if err == nil {
		t.Fatal("locked deal without an eligibility note must be rejected")
	}
	if !strings.Contains(err.Error(), "eligibility note") {
		t.Errorf("error = %v, want eligibility note rejection", err)
	}
	if !strings.Contains(err.Error(), "deal 1") {
		t.Errorf("error = %v, want offending deal index", err)
	}
}
