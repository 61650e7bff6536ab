package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestDealFilter_Matches(t *testing.T) {
	deal := &Deal{
		ID:             "deal-1",
		Title:          "AWS Credits",
		Description:    "$10,000 in AWS credits for early-stage startups",
		Category:       CategoryDevelopment,
		PartnerName:    "Amazon Web Services",
		AccessLevel:    AccessLevelLocked,
		BenefitDetails: "$10,000 in AWS credits valid for 2 years.",
	}

	tests := []struct {
		name   string
		filter DealFilter
		want   bool
	}{
		{
			name:   "empty filter matches all",
			filter: DealFilter{},
			want:   true,
		},
		{
			name:   "category match",
			filter: DealFilter{Category: CategoryDevelopment},
			want:   true,
		},
		{
			name:   "category mismatch",
			filter: DealFilter{Category: CategoryMarketing},
			want:   false,
		},
		{
			name:   "access level match",
			filter: DealFilter{AccessLevel: AccessLevelLocked},
			want:   true,
		},
		{
			name:   "access level mismatch",
			filter: DealFilter{AccessLevel: AccessLevelPublic},
			want:   false,
		},
		{
			name:   "text match on title case-insensitive",
			filter: DealFilter{Text: "aws"},
			want:   true,
		},
		{
			name:   "text match on description",
			filter: DealFilter{Text: "early-stage"},
			want:   true,
		},
		{
			name:   "text match on partner name",
			filter: DealFilter{Text: "amazon"},
			want:   true,
		},
		{
			name:   "text mismatch",
			filter: DealFilter{Text: "figma"},
			want:   false,
		},
		{
			name:   "conjunction: category matches but text does not",
			filter: DealFilter{Category: CategoryDevelopment, Text: "figma"},
			want:   false,
		},
		{
			name:   "conjunction: all criteria match",
			filter: DealFilter{Category: CategoryDevelopment, AccessLevel: AccessLevelLocked, Text: "credits"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(deal); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDealPayload_LockedRequiresEligibilityNote(t *testing.T) {
	v := validator.New()

	payload := DealPayload{
		Title:          "Stripe Processing Fees",
		Description:    "Reduced processing fees for startups",
		Category:       CategoryDevelopment,
		PartnerName:    "Stripe",
		AccessLevel:    AccessLevelLocked,
		BenefitDetails: "Reduced processing fees of 2.2% + 30¢ per transaction",
	}

	if err := v.Struct(payload); err == nil {
		t.Error("locked deal without an eligibility note should fail validation")
	}

	payload.EligibilityNote = "Must be a registered startup with less than 50 employees"
	if err := v.Struct(payload); err != nil {
		t.Errorf("locked deal with a note should pass: %v", err)
	}

	payload.AccessLevel = AccessLevelPublic
	payload.EligibilityNote = ""
	if err := v.Struct(payload); err != nil {
		t.Errorf("public deal without a note should pass: %v", err)
	}
}
