package services

import (
	"errors"
	"testing"

	"perkhub/internal/models"
)

func TestCheckClaimEligibility(t *testing.T) {
	publicDeal := &models.Deal{ID: "d-public", AccessLevel: models.AccessLevelPublic}
	lockedDeal := &models.Deal{ID: "d-locked", AccessLevel: models.AccessLevelLocked, EligibilityNote: "startups only"}

	verified := &models.User{ID: 1, IsVerified: true}
	unverified := &models.User{ID: 2, IsVerified: false}

	tests := []struct {
		name    string
		deal    *models.Deal
		user    *models.User
		wantErr error
	}{
		{
			name: "public deal, unverified user",
			deal: publicDeal,
			user: unverified,
		},
		{
			name: "public deal, verified user",
			deal: publicDeal,
			user: verified,
		},
		{
			name:    "locked deal, unverified user",
			deal:    lockedDeal,
			user:    unverified,
			wantErr: ErrVerificationRequired,
		},
		{
			name: "locked deal, verified user",
			deal: lockedDeal,
			user: verified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkClaimEligibility(tt.deal, tt.user)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("checkClaimEligibility() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if isUniqueViolation(nil) {
		t.Error("nil error should not be a unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Error("arbitrary error should not be a unique violation")
	}
}
