package router

import (
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/logstore"
	"github.com/labstack/echo/v4"
)

type LogRouter struct {
	g     *echo.Group
	store *logstore.Store
}

func NewLogRouter(g *echo.Group, store *logstore.Store) *LogRouter {
	return &LogRouter{g: g, store: store}
}

func (r *LogRouter) Bind() {
	r.g.GET("/logs/dates", r.datesHandler)
	r.g.GET("/logs/files", r.filesHandler)
	r.g.GET("/logs/files/:name", r.fileHandler)
	r.g.GET("/logs/crawler", r.crawlerHandler)
}

// datesHandler godoc
// @Summary Selectable log dates
// @Tags logs
// @Produce json
// @Param days query int false "Number of days" default(7)
// @Success 200 {array} logstore.DateOption
// @Router /api/v1/logs/dates [get]
func (r *LogRouter) datesHandler(c echo.Context) error {
	days := logstore.DefaultDays
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return apperr.NewValidationWrap("days must be an integer", err)
		}
		days = n
	}
	return c.JSON(http.StatusOK, r.store.AvailableDates(days))
}

// filesHandler godoc
// @Summary Crawler log files, newest first
// @Tags logs
// @Produce json
// @Success 200 {array} logstore.File
// @Router /api/v1/logs/files [get]
func (r *LogRouter) filesHandler(c echo.Context) error {
	files, err := r.store.Files()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, files)
}

// fileHandler godoc
// @Summary Crawler log file content
// @Tags logs
// @Produce json
// @Param name path string true "Log file name"
// @Success 200 {object} logstore.Content
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/logs/files/{name} [get]
func (r *LogRouter) fileHandler(c echo.Context) error {
	content, err := r.store.ReadFile(c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}

// crawlerHandler godoc
// @Summary Crawler log of one day
// @Tags logs
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} logstore.Content
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/logs/crawler [get]
func (r *LogRouter) crawlerHandler(c echo.Context) error {
	content, err := r.store.ReadByDate(c.QueryParam("date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}
