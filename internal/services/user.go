package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"perkhub/internal/datastore"
	"perkhub/internal/interfaces"
	"perkhub/internal/models"

	"github.com/go-redis/redis_rate/v10"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

var ErrEmailTaken = errors.New("email already registered")

type ServiceUser struct {
	container          *do.Injector
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	authentication     *Authentication
	limiter            interfaces.Limiter
}

func NewServiceUser(container *do.Injector) (*ServiceUser, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	authentication, err := do.Invoke[*Authentication](container)
	if err != nil {
		return nil, err
	}

	limiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	return &ServiceUser{container, postgresDB, readonlyPostgresDB, authentication, limiter}, nil
}

func (service *ServiceUser) Register(ctx context.Context, payload *models.RegisterPayload) (*models.User, error) {
	hash, err := service.authentication.HashPassword(payload.Password)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	now := time.Now()
	user := &models.User{
		Name:         payload.Name,
		Email:        strings.ToLower(payload.Email),
		StartupName:  payload.StartupName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = datastore.CreateUser(ctx, service.postgresDB, user)
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return user, nil
}

func (service *ServiceUser) Login(ctx context.Context, payload *models.LoginPayload) (*models.User, error) {
	err := service.limiter.Allow(ctx, LimitKeyAuth(strings.ToLower(payload.Email)), redis_rate.PerMinute(AUTH_RATE_LIMIT_PER_MINUTE))
	if err != nil {
		if err.Error() == limiter.ErrRateLimited.Error() {
			return nil, errorx.Wrap(err, errorx.RateLimiting)
		}
		return nil, errorx.Wrap(err, errorx.Service)
	}

	user, err := datastore.FindUserByEmail(ctx, service.readonlyPostgresDB, payload.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("invalid credentials"), errorx.Authn)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	if !service.authentication.CheckPassword(user.PasswordHash, payload.Password) {
		return nil, errorx.Wrap(errors.New("invalid credentials"), errorx.Authn)
	}

	return user, nil
}

func (service *ServiceUser) FindUserByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := datastore.FindUserByID(ctx, service.readonlyPostgresDB, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("user not found"), errorx.NotExist)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return user, nil
}

// SetUserVerified is the administrative toggle; nothing else mutates the flag.
func (service *ServiceUser) SetUserVerified(ctx context.Context, userID int64, verified bool) (*models.User, error) {
	user, err := service.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := datastore.SetUserVerified(ctx, service.postgresDB, user.ID, verified); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	user.IsVerified = verified
	return user, nil
}
