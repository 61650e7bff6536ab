package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch ClaimStatus(s) {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return ClaimStatus(s), nil
	}
	return "", fmt.Errorf("invalid claim status %q", s)
}

type Claim struct {
	bun.BaseModel `bun:"table:claim"`
	ID            string      `bun:"id,pk" json:"id"`
	UserID        int64       `bun:"user_id" json:"user_id"`
	DealID        string      `bun:"deal_id" json:"deal_id"`
	Status        ClaimStatus `bun:"status" json:"status"`
	ClaimedAt     time.Time   `bun:"claimed_at,default:current_timestamp" json:"claimed_at"`
	UpdatedAt     time.Time   `bun:"updated_at" json:"updated_at"`
}

// ClaimView is the read-side projection of a claim with its deal summary
// attached. It is assembled per response and never persisted.
type ClaimView struct {
	ID             string       `bun:"id" json:"id"`
	UserID         int64        `bun:"user_id" json:"user_id"`
	DealID         string       `bun:"deal_id" json:"deal_id"`
	Status         ClaimStatus  `bun:"status" json:"status"`
	ClaimedAt      time.Time    `bun:"claimed_at" json:"claimed_at"`
	Title          string       `bun:"title" json:"title"`
	PartnerName    string       `bun:"partner_name" json:"partner_name"`
	Category       DealCategory `bun:"category" json:"category"`
	BenefitDetails string       `bun:"benefit_details" json:"benefit_details"`
	AccessLevel    AccessLevel  `bun:"access_level" json:"access_level"`
}

func NewClaimView(claim *Claim, deal *Deal) *ClaimView {
	return &ClaimView{
		ID:             claim.ID,
		UserID:         claim.UserID,
		DealID:         claim.DealID,
		Status:         claim.Status,
		ClaimedAt:      claim.ClaimedAt,
		Title:          deal.Title,
		PartnerName:    deal.PartnerName,
		Category:       deal.Category,
		BenefitDetails: deal.BenefitDetails,
		AccessLevel:    deal.AccessLevel,
	}
}

type ClaimPayload struct {
	DealID string `json:"dealId"`
}

type ClaimStatusPayload struct {
	Status string `json:"status"`
}
