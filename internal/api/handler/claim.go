package handler

import (
	"errors"
	"net/http"

	"perkhub/internal/models"
	"perkhub/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupClaim struct {
	container *do.Injector
}

func (gr *groupClaim) Create(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload models.ClaimPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceClaim, err := do.Invoke[*services.ServiceClaim](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	claim, err := serviceClaim.CreateClaim(ctx, user, payload.DealID)
	switch {
	case errors.Is(err, services.ErrVerificationRequired):
		return httpx.Abort(c, err, http.StatusForbidden)
	case errors.Is(err, services.ErrAlreadyClaimed):
		return httpx.Abort(c, err, http.StatusConflict)
	case err != nil:
		return httpx.RestAbort(c, nil, err)
	}

	return c.JSON(http.StatusCreated, claim)
}

func (gr *groupClaim) My(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceClaim, err := do.Invoke[*services.ServiceClaim](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	claims, err := serviceClaim.ListClaimsForUser(ctx, user.ID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, claims, nil)
}

func (gr *groupClaim) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var payload models.ClaimStatusPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceClaim, err := do.Invoke[*services.ServiceClaim](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	claim, err := serviceClaim.UpdateClaimStatus(ctx, c.Param("id"), payload.Status)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, claim, nil)
}
