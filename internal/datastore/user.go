package datastore

import (
	"context"
	"strings"

	"perkhub/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableUser(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.User)(nil)).Index("index_user_email").IfNotExists().Unique().Column("email").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func CreateUser(ctx context.Context, db *bun.DB, user *models.User) (*models.User, error) {
	_, err := db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func FindUserByID(ctx context.Context, db *bun.DB, userID int64) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(ctx context.Context, db *bun.DB, email string) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("email = ?", strings.ToLower(email)).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func SetUserVerified(ctx context.Context, db *bun.DB, userID int64, verified bool) error {
	_, err := db.NewUpdate().
		Model((*models.User)(nil)).
		Set("is_verified = ?", verified).
		Set("updated_at = current_timestamp").
		Where("id = ?", userID).
		Exec(ctx)
	return err
}
