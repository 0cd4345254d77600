package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/labstack/echo/v4"
)

type StatisticsService interface {
	SiteCounts(ctx context.Context) []domain.SiteCount
	SiteFileCounts(ctx context.Context) []domain.SiteFileCount
	DetailCounts(ctx context.Context) []domain.DetailCount
	Overview(ctx context.Context) domain.Overview
	CollectionPeriod(ctx context.Context) domain.CollectionPeriod
}

type StatisticsRouter struct {
	g   *echo.Group
	svc StatisticsService
}

func NewStatisticsRouter(g *echo.Group, svc StatisticsService) *StatisticsRouter {
	return &StatisticsRouter{g: g, svc: svc}
}

func (r *StatisticsRouter) Bind() {
	r.g.GET("/statistics/metrics", r.overviewHandler)
	r.g.GET("/statistics/sites", r.sitesHandler)
	r.g.GET("/statistics/files", r.filesHandler)
	r.g.GET("/statistics/detail", r.detailHandler)
	r.g.GET("/statistics/period", r.periodHandler)
}

// overviewHandler godoc
// @Summary Catalog and collection totals
// @Tags statistics
// @Produce json
// @Success 200 {object} domain.Overview
// @Router /api/v1/statistics/metrics [get]
func (r *StatisticsRouter) overviewHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.svc.Overview(c.Request().Context()))
}

// sitesHandler godoc
// @Summary Documents per site
// @Tags statistics
// @Produce json
// @Success 200 {array} domain.SiteCount
// @Router /api/v1/statistics/sites [get]
func (r *StatisticsRouter) sitesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.svc.SiteCounts(c.Request().Context()))
}

// filesHandler godoc
// @Summary Attachments per site
// @Tags statistics
// @Produce json
// @Success 200 {array} domain.SiteFileCount
// @Router /api/v1/statistics/files [get]
func (r *StatisticsRouter) filesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.svc.SiteFileCounts(c.Request().Context()))
}

// detailHandler godoc
// @Summary Documents and attachments per site page
// @Tags statistics
// @Produce json
// @Success 200 {array} domain.DetailCount
// @Router /api/v1/statistics/detail [get]
func (r *StatisticsRouter) detailHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.svc.DetailCounts(c.Request().Context()))
}

// periodHandler godoc
// @Summary First and last collection date
// @Tags statistics
// @Produce json
// @Success 200 {object} domain.CollectionPeriod
// @Router /api/v1/statistics/period [get]
func (r *StatisticsRouter) periodHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.svc.CollectionPeriod(c.Request().Context()))
}
