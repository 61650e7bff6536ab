package handler

import (
	"perkhub/internal/models"
	"perkhub/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupDeal struct {
	container *do.Injector
}

func (gr *groupDeal) List(c echo.Context) error {
	ctx := c.Request().Context()

	serviceDeal, err := do.Invoke[*services.ServiceDeal](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	filter := models.DealFilter{
		Text:        c.QueryParam("search"),
		Category:    models.DealCategory(c.QueryParam("category")),
		AccessLevel: models.AccessLevel(c.QueryParam("access_level")),
	}

	deals, err := serviceDeal.ListDeals(ctx, filter)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, deals, nil)
}

func (gr *groupDeal) Show(c echo.Context) error {
	ctx := c.Request().Context()

	serviceDeal, err := do.Invoke[*services.ServiceDeal](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	deal, err := serviceDeal.GetDeal(ctx, c.Param("id"))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, deal, nil)
}

func (gr *groupDeal) Seed(c echo.Context) error {
	ctx := c.Request().Context()

	var payloads []models.DealPayload
	if err := c.Bind(&payloads); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}
	for i := range payloads {
		if err := c.Validate(&payloads[i]); err != nil {
			return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
		}
	}

	serviceDeal, err := do.Invoke[*services.ServiceDeal](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	deals, err := serviceDeal.ReplaceCatalog(ctx, payloads)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, deals, nil)
}
