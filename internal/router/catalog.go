package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/crawl-report/internal/catalog"
	"github.com/labstack/echo/v4"
)

type CatalogReader interface {
	Current() *catalog.Snapshot
}

type CatalogSyncer interface {
	SyncFile(ctx context.Context, path string) (*catalog.Result, error)
}

type CatalogRouter struct {
	g      *echo.Group
	reader CatalogReader
	syncer CatalogSyncer
	source string
}

// NewCatalogRouter serves the current catalog and resyncs it from source.
func NewCatalogRouter(g *echo.Group, reader CatalogReader, syncer CatalogSyncer, source string) *CatalogRouter {
	return &CatalogRouter{g: g, reader: reader, syncer: syncer, source: source}
}

func (r *CatalogRouter) Bind() {
	r.g.GET("/catalog", r.getHandler)
	r.g.POST("/catalog/sync", r.syncHandler)
}

// getHandler godoc
// @Summary Current catalog snapshot
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Snapshot
// @Router /api/v1/catalog [get]
func (r *CatalogRouter) getHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.reader.Current())
}

// syncHandler godoc
// @Summary Reload the catalog from the site description
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Result
// @Failure 422 {object} map[string]string
// @Router /api/v1/catalog/sync [post]
func (r *CatalogRouter) syncHandler(c echo.Context) error {
	res, err := r.syncer.SyncFile(c.Request().Context(), r.source)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
