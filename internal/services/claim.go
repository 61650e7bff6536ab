package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"perkhub/internal/datastore"
	"perkhub/internal/interfaces"
	"perkhub/internal/models"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/samber/do"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	ErrVerificationRequired = errors.New("you must be verified to claim this deal")
	ErrAlreadyClaimed       = errors.New("you have already claimed this deal")
)

type ServiceClaim struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB

	limiter interfaces.Limiter
}

func NewServiceClaim(container *do.Injector) (*ServiceClaim, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	limiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	return &ServiceClaim{container, postgresDB, readonlyPostgresDB, limiter}, nil
}

// checkClaimEligibility gates claim creation. Verification is checked
// against the user row as loaded for this request, never re-validated on
// existing claims.
func checkClaimEligibility(deal *models.Deal, user *models.User) error {
	if deal.AccessLevel == models.AccessLevelLocked && !user.IsVerified {
		return ErrVerificationRequired
	}

	return nil
}

func (service *ServiceClaim) CreateClaim(ctx context.Context, user *models.User, dealID string) (*models.ClaimView, error) {
	if dealID == "" {
		return nil, errorx.Wrap(errors.New("deal id is required"), errorx.Validation)
	}

	err := service.limiter.Allow(ctx, LimitKeyClaim(user.ID), redis_rate.PerMinute(CLAIM_RATE_LIMIT_PER_MINUTE))
	if err != nil {
		if err.Error() == limiter.ErrRateLimited.Error() {
			return nil, errorx.Wrap(err, errorx.RateLimiting)
		}
		return nil, errorx.Wrap(err, errorx.Service)
	}

	deal, err := datastore.FindDealByID(ctx, service.readonlyPostgresDB, dealID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("deal not found"), errorx.NotExist)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	if err := checkClaimEligibility(deal, user); err != nil {
		return nil, err
	}

	claim := &models.Claim{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		DealID:    deal.ID,
		Status:    models.ClaimStatusPending,
		ClaimedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// the unique index on (user_id, deal_id) is the duplicate check
	err = datastore.CreateClaim(ctx, service.postgresDB, claim)
	if isUniqueViolation(err) {
		return nil, ErrAlreadyClaimed
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return models.NewClaimView(claim, deal), nil
}

func (service *ServiceClaim) ListClaimsForUser(ctx context.Context, userID int64) ([]*models.ClaimView, error) {
	views, err := datastore.GetClaimViewsByUser(ctx, service.readonlyPostgresDB, userID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return views, nil
}

// UpdateClaimStatus overwrites the status unconditionally; any state may
// move to any other (last-write-wins).
func (service *ServiceClaim) UpdateClaimStatus(ctx context.Context, claimID string, status string) (*models.ClaimView, error) {
	parsed, err := models.ParseClaimStatus(status)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Validation)
	}

	_, err = datastore.FindClaimByID(ctx, service.readonlyPostgresDB, claimID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("claim not found"), errorx.NotExist)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	if err := datastore.UpdateClaimStatus(ctx, service.postgresDB, claimID, parsed); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	view, err := datastore.FindClaimViewByID(ctx, service.postgresDB, claimID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return view, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.IntegrityViolation()
	}

	return false
}
