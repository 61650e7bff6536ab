package models

import (
	"strings"
	"time"

	"github.com/uptrace/bun"
)

type DealCategory string

const (
	CategoryMarketing    DealCategory = "Marketing"
	CategoryDevelopment  DealCategory = "Development"
	CategoryDesign       DealCategory = "Design"
	CategoryAnalytics    DealCategory = "Analytics"
	CategoryProductivity DealCategory = "Productivity"
	CategorySales        DealCategory = "Sales"
	CategoryOther        DealCategory = "Other"
)

type AccessLevel string

const (
	AccessLevelPublic AccessLevel = "public"
	AccessLevelLocked AccessLevel = "locked"
)

type Deal struct {
	bun.BaseModel   `bun:"table:deal"`
	ID              string       `bun:"id,pk" json:"id"`
	Title           string       `bun:"title" json:"title"`
	Description     string       `bun:"description" json:"description"`
	Category        DealCategory `bun:"category" json:"category"`
	PartnerName     string       `bun:"partner_name" json:"partner_name"`
	AccessLevel     AccessLevel  `bun:"access_level" json:"access_level"`
	EligibilityNote string       `bun:"eligibility_note" json:"eligibility_note,omitempty"`
	BenefitDetails  string       `bun:"benefit_details" json:"benefit_details"`
	FeaturedImage   string       `bun:"featured_image" json:"featured_image,omitempty"`
	CreatedAt       time.Time    `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time    `bun:"updated_at" json:"updated_at"`
}

// DealPayload is the seed shape accepted by the catalog bulk load.
type DealPayload struct {
	Title           string       `json:"title" validate:"required"`
	Description     string       `json:"description" validate:"required"`
	Category        DealCategory `json:"category" validate:"required,oneof=Marketing Development Design Analytics Productivity Sales Other"`
	PartnerName     string       `json:"partnerName" validate:"required"`
	AccessLevel     AccessLevel  `json:"accessLevel" validate:"required,oneof=public locked"`
	EligibilityNote string       `json:"eligibilityNote" validate:"required_if=AccessLevel locked"`
	BenefitDetails  string       `json:"benefitDetails" validate:"required"`
	FeaturedImage   string       `json:"featuredImage"`
}

// DealFilter narrows the catalog listing. Zero-value criteria match all;
// supplied criteria are ANDed together.
type DealFilter struct {
	Text        string
	Category    DealCategory
	AccessLevel AccessLevel
}

func (filter DealFilter) Matches(deal *Deal) bool {
	if filter.Category != "" && deal.Category != filter.Category {
		return false
	}

	if filter.AccessLevel != "" && deal.AccessLevel != filter.AccessLevel {
		return false
	}

	if filter.Text != "" {
		needle := strings.ToLower(filter.Text)
		if !strings.Contains(strings.ToLower(deal.Title), needle) &&
			!strings.Contains(strings.ToLower(deal.Description), needle) &&
			!strings.Contains(strings.ToLower(deal.PartnerName), needle) {
			return false
		}
	}

	return true
}
