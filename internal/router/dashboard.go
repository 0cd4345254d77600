package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/crawl-report/internal/dashboard"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/labstack/echo/v4"
)

type DashboardService interface {
	DashboardMetrics(ctx context.Context) domain.DashboardMetrics
	WindowedDocuments(ctx context.Context, period dashboard.Period) []domain.DocumentRow
}

type DashboardRouter struct {
	g   *echo.Group
	svc DashboardService
}

func NewDashboardRouter(g *echo.Group, svc DashboardService) *DashboardRouter {
	return &DashboardRouter{g: g, svc: svc}
}

func (r *DashboardRouter) Bind() {
	r.g.GET("/dashboard/metrics", r.metricsHandler)
	r.g.GET("/dashboard/data", r.dataHandler)
}

// metricsHandler godoc
// @Summary Dashboard metrics
// @Description Collected documents (attachments) today, in the last 3 and 7 days and overall, plus errors on the latest collection day
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardMetrics
// @Router /api/v1/dashboard/metrics [get]
func (r *DashboardRouter) metricsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.svc.DashboardMetrics(c.Request().Context()))
}

// dataHandler godoc
// @Summary Recently collected documents
// @Tags dashboard
// @Produce json
// @Param period query string false "today, 3days or 7days" default(today)
// @Success 200 {array} domain.DocumentRow
// @Router /api/v1/dashboard/data [get]
func (r *DashboardRouter) dataHandler(c echo.Context) error {
	period := dashboard.ParsePeriod(c.QueryParam("period"))
	return c.JSON(http.StatusOK, r.svc.WindowedDocuments(c.Request().Context(), period))
}
