package models

import (
	"testing"
	"time"
)

func TestParseClaimStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    ClaimStatus
		wantErr bool
	}{
		{input: "pending", want: ClaimStatusPending},
		{input: "approved", want: ClaimStatusApproved},
		{input: "rejected", want: ClaimStatusRejected},
		{input: "", wantErr: true},
		{input: "Approved", wantErr: true},
		{input: "cancelled", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClaimStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClaimStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseClaimStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewClaimView(t *testing.T) {
	claimedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	claim := &Claim{
		ID:        "claim-1",
		UserID:    7,
		DealID:    "deal-1",
		Status:    ClaimStatusPending,
		ClaimedAt: claimedAt,
	}
	deal := &Deal{
		ID:             "deal-1",
		Title:          "Figma Team Plan",
		PartnerName:    "Figma",
		Category:       CategoryDesign,
		BenefitDetails: "Free Figma Team plan for 12 months.",
		AccessLevel:    AccessLevelPublic,
	}

	view := NewClaimView(claim, deal)

	if view.ID != claim.ID || view.UserID != claim.UserID || view.DealID != claim.DealID {
		t.Errorf("view identity fields = %+v, want claim fields", view)
	}
	if view.Status != ClaimStatusPending {
		t.Errorf("view status = %v, want pending", view.Status)
	}
	if !view.ClaimedAt.Equal(claimedAt) {
		t.Errorf("view claimedAt = %v, want %v", view.ClaimedAt, claimedAt)
	}
	if view.Title != deal.Title || view.PartnerName != deal.PartnerName || view.BenefitDetails != deal.BenefitDetails {
		t.Errorf("view deal summary = %+v, want deal fields", view)
	}
	if view.Category != CategoryDesign || view.AccessLevel != AccessLevelPublic {
		t.Errorf("view category/access = %v/%v", view.Category, view.AccessLevel)
	}
}
