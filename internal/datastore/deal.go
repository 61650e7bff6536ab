package datastore

import (
	"context"

	"perkhub/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableDeal(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Deal)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Deal)(nil)).Index("index_deal_category").IfNotExists().Column("category").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Deal)(nil)).Index("index_deal_access_level").IfNotExists().Column("access_level").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

// GetAllDeals returns the catalog in stable order.
func GetAllDeals(ctx context.Context, db *bun.DB) ([]*models.Deal, error) {
	var deals []*models.Deal
	err := db.NewSelect().Model(&deals).Order("created_at ASC").Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}

	return deals, nil
}

func FindDealByID(ctx context.Context, db *bun.DB, dealID string) (*models.Deal, error) {
	var deal models.Deal
	err := db.NewSelect().Model(&deal).Where("id = ?", dealID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// ReplaceDeals swaps the whole catalog in one transaction.
func ReplaceDeals(ctx context.Context, db *bun.DB, deals []*models.Deal) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*models.Deal)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return err
		}

		if len(deals) == 0 {
			return nil
		}

		if _, err := tx.NewInsert().Model(&deals).Exec(ctx); err != nil {
			return err
		}

		return nil
	})
}
