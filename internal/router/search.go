package router

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/search"
	"github.com/DjordjeVuckovic/crawl-report/pkg/pagination"
	"github.com/DjordjeVuckovic/crawl-report/pkg/stringsutil"
	"github.com/labstack/echo/v4"
)

type Searcher interface {
	Search(ctx context.Context, siteKeys []string, keyword string, page, pageSize int) (*search.Result, error)
	Sites(ctx context.Context) []domain.Site
}

type SearchRouter struct {
	g        *echo.Group
	searcher Searcher
}

func NewSearchRouter(g *echo.Group, searcher Searcher) *SearchRouter {
	return &SearchRouter{g: g, searcher: searcher}
}

func (r *SearchRouter) Bind() {
	r.g.GET("/search/sites", r.sitesHandler)
	r.g.GET("/search/results", r.searchHandler)
}

// sitesHandler godoc
// @Summary Searchable sites
// @Tags search
// @Produce json
// @Success 200 {array} domain.Site
// @Router /api/v1/search/sites [get]
func (r *SearchRouter) sitesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.searcher.Sites(c.Request().Context()))
}

// searchHandler godoc
// @Summary Search collected documents
// @Description Filters by site codes and a keyword matched against title and summary. With neither filter the result is empty.
// @Tags search
// @Produce json
// @Param sites query string false "Comma separated site codes"
// @Param keyword query string false "Keyword"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size (10-100)" default(10)
// @Success 200 {object} pagination.OffsetResult[domain.DocumentRow]
// @Failure 400 {object} map[string]string
// @Router /api/v1/search/results [get]
func (r *SearchRouter) searchHandler(c echo.Context) error {
	page, err := intParam(c, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := intParam(c, "page_size", pagination.PageDefaultSize)
	if err != nil {
		return err
	}

	sites := stringsutil.SplitCSV(c.QueryParam("sites"))
	res, err := r.searcher.Search(c.Request().Context(), sites, c.QueryParam("keyword"), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewValidationWrap(name+" must be an integer", err)
	}
	return v, nil
}
