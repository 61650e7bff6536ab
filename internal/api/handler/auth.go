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

type groupAuth struct {
	container *do.Injector
}

func (gr *groupAuth) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var payload models.RegisterPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	user, err := serviceUser.Register(ctx, &payload)
	if errors.Is(err, services.ErrEmailTaken) {
		return httpx.Abort(c, err, http.StatusConflict)
	}
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return gr.withToken(c, user)
}

func (gr *groupAuth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var payload models.LoginPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	user, err := serviceUser.Login(ctx, &payload)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return gr.withToken(c, user)
}

func (gr *groupAuth) withToken(c echo.Context, user *models.User) error {
	authentication, err := do.Invoke[*services.Authentication](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	token, err := authentication.CreateToken(user)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"token": token,
		"user":  user,
	}, nil)
}
