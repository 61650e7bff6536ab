package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"perkhub/internal/datastore"
	"perkhub/internal/models"

	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceDeal struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
}

func NewServiceDeal(container *do.Injector) (*ServiceDeal, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	return &ServiceDeal{container, postgresDB, readonlyPostgresDB}, nil
}

// ListDeals applies the filter over the full catalog. The catalog is small
// and read-mostly, so filtering stays in one place instead of being spread
// across SQL fragments.
func (service *ServiceDeal) ListDeals(ctx context.Context, filter models.DealFilter) ([]*models.Deal, error) {
	deals, err := datastore.GetAllDeals(ctx, service.readonlyPostgresDB)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	filtered := make([]*models.Deal, 0, len(deals))
	for _, deal := range deals {
		if filter.Matches(deal) {
			filtered = append(filtered, deal)
		}
	}

	return filtered, nil
}

func (service *ServiceDeal) GetDeal(ctx context.Context, dealID string) (*models.Deal, error) {
	deal, err := datastore.FindDealByID(ctx, service.readonlyPostgresDB, dealID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("deal not found"), errorx.NotExist)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return deal, nil
}

// ReplaceCatalog validates and bulk-loads the deal catalog, replacing
// whatever was there before.
func (service *ServiceDeal) ReplaceCatalog(ctx context.Context, payloads []models.DealPayload) ([]*models.Deal, error) {
	now := time.Now()
	deals := make([]*models.Deal, 0, len(payloads))
	for i, payload := range payloads {
		if payload.AccessLevel == models.AccessLevelLocked && payload.EligibilityNote == "" {
			return nil, errorx.Wrap(fmt.Errorf("deal %d: locked deal requires an eligibility note", i), errorx.Validation)
		}

		deals = append(deals, &models.Deal{
			ID:              uuid.NewString(),
			Title:           payload.Title,
			Description:     payload.Description,
			Category:        payload.Category,
			PartnerName:     payload.PartnerName,
			AccessLevel:     payload.AccessLevel,
			EligibilityNote: payload.EligibilityNote,
			BenefitDetails:  payload.BenefitDetails,
			FeaturedImage:   payload.FeaturedImage,
			// staggered so the (created_at, id) catalog order preserves seed order
			CreatedAt:       now.Add(time.Duration(i) * time.Millisecond),
			UpdatedAt:       now,
		})
	}

	if err := datastore.ReplaceDeals(ctx, service.postgresDB, deals); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return deals, nil
}
