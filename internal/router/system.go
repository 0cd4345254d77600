package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/labstack/echo/v4"
)

type SystemInfoProvider interface {
	SystemInfo(ctx context.Context) domain.SystemInfo
}

type SystemRouter struct {
	g        *echo.Group
	provider SystemInfoProvider
}

func NewSystemRouter(g *echo.Group, provider SystemInfoProvider) *SystemRouter {
	return &SystemRouter{g: g, provider: provider}
}

func (r *SystemRouter) Bind() {
	r.g.GET("/settings/system-info", r.systemInfoHandler)
}

// systemInfoHandler godoc
// @Summary Runtime, store and catalog state
// @Tags settings
// @Produce json
// @Success 200 {object} domain.SystemInfo
// @Router /api/v1/settings/system-info [get]
func (r *SystemRouter) systemInfoHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.provider.SystemInfo(c.Request().Context()))
}
