package handler

import (
	"net/http"

	"perkhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
	AdminKey  string
}

type payloadValidator struct {
	instance *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	return v.instance.Struct(i)
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Validator = &payloadValidator{validator.New()}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	routesAPIv1 := r.Group("/api/v1")
	{
		authentication, err := do.Invoke[*services.Authentication](cfg.Container)
		if err != nil {
			return nil, err
		}

		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})

		routesAPIv1.Use(cors)

		a := groupAuth{cfg.Container}
		routesAPIv1.POST("/auth/register", a.Register)
		routesAPIv1.POST("/auth/login", a.Login)

		routesAPIv1.Use(Authn(authentication))

		u := groupUser{cfg.Container}
		routesAPIv1.GET("/user/me", u.Me)
		routesAPIv1.POST("/users/:id/verify", u.Verify, AuthnAdmin(cfg.AdminKey))

		d := groupDeal{cfg.Container}
		routesAPIv1.GET("/deals", d.List)
		routesAPIv1.GET("/deals/:id", d.Show)
		routesAPIv1.POST("/deals", d.Seed, AuthnAdmin(cfg.AdminKey))

		cl := groupClaim{cfg.Container}
		routesAPIv1.POST("/claims", cl.Create)
		routesAPIv1.GET("/claims/my", cl.My)
		routesAPIv1.PATCH("/claims/:id/status", cl.UpdateStatus, AuthnAdmin(cfg.AdminKey))
	}

	return r, nil
}
