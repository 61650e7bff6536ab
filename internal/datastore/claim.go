package datastore

import (
	"context"

	"perkhub/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableClaim(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Claim)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	// one claim per (user, deal) pair, enforced by the database
	_, err = db.NewCreateIndex().Model((*models.Claim)(nil)).Index("index_claim_user_deal").IfNotExists().Unique().Column("user_id", "deal_id").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Claim)(nil)).Index("index_claim_user_id").IfNotExists().Column("user_id").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func CreateClaim(ctx context.Context, db *bun.DB, claim *models.Claim) error {
	_, err := db.NewInsert().Model(claim).Exec(ctx)
	return err
}

func FindClaimByID(ctx context.Context, db *bun.DB, claimID string) (*models.Claim, error) {
	var claim models.Claim
	err := db.NewSelect().Model(&claim).Where("id = ?", claimID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// claimViewQuery joins the deal summary onto a claim. A claim outlives a
// catalog reseed, so the deal side may be gone; the claim stays visible
// with empty summary columns.
func claimViewQuery(db *bun.DB) *bun.SelectQuery {
	return db.NewSelect().
		ColumnExpr("c.id, c.user_id, c.deal_id, c.status, c.claimed_at, coalesce(d.title, '') AS title, coalesce(d.partner_name, '') AS partner_name, coalesce(d.category, '') AS category, coalesce(d.benefit_details, '') AS benefit_details, coalesce(d.access_level, '') AS access_level").
		TableExpr("claim c").
		Join("LEFT JOIN deal d ON d.id = c.deal_id")
}

func claimViewsByUserQuery(db *bun.DB, userID int64) *bun.SelectQuery {
	return claimViewQuery(db).
		Where("c.user_id = ?", userID).
		OrderExpr("c.claimed_at DESC")
}

func GetClaimViewsByUser(ctx context.Context, db *bun.DB, userID int64) ([]*models.ClaimView, error) {
	views := make([]*models.ClaimView, 0)
	err := claimViewsByUserQuery(db, userID).Scan(ctx, &views)
	if err != nil {
		return nil, err
	}

	return views, nil
}

func FindClaimViewByID(ctx context.Context, db *bun.DB, claimID string) (*models.ClaimView, error) {
	var view models.ClaimView
	err := claimViewQuery(db).
		Where("c.id = ?", claimID).
		Scan(ctx, &view)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

func UpdateClaimStatus(ctx context.Context, db *bun.DB, claimID string, status models.ClaimStatus) error {
	_, err := db.NewUpdate().
		Model((*models.Claim)(nil)).
		Set("status = ?", status).
		Set("updated_at = current_timestamp").
		Where("id = ?", claimID).
		Exec(ctx)
	return err
}
