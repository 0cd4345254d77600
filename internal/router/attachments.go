package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/labstack/echo/v4"
)

type AttachmentStore interface {
	List(ctx context.Context, key domain.DocumentKey) []domain.Attachment
	Resolve(key domain.DocumentKey, fileName string) (string, error)
}

type AttachmentRouter struct {
	g     *echo.Group
	store AttachmentStore
}

func NewAttachmentRouter(g *echo.Group, store AttachmentStore) *AttachmentRouter {
	return &AttachmentRouter{g: g, store: store}
}

func (r *AttachmentRouter) Bind() {
	r.g.GET("/attachments/:site/:page/:seq", r.listHandler)
	r.g.GET("/attachments/:site/:page/:seq/:filename", r.downloadHandler)
}

func documentKey(c echo.Context) domain.DocumentKey {
	return domain.DocumentKey{
		SiteKey:    c.Param("site"),
		PageKey:    c.Param("page"),
		SequenceID: c.Param("seq"),
	}
}

// listHandler godoc
// @Summary Attachments of a document
// @Tags attachments
// @Produce json
// @Param site path string true "Site code"
// @Param page path string true "Page code"
// @Param seq path string true "Document sequence"
// @Success 200 {array} domain.Attachment
// @Router /api/v1/attachments/{site}/{page}/{seq} [get]
func (r *AttachmentRouter) listHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.store.List(c.Request().Context(), documentKey(c)))
}

// downloadHandler godoc
// @Summary Download an attachment
// @Tags attachments
// @Produce octet-stream
// @Param site path string true "Site code"
// @Param page path string true "Page code"
// @Param seq path string true "Document sequence"
// @Param filename path string true "File name"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Router /api/v1/attachments/{site}/{page}/{seq}/{filename} [get]
func (r *AttachmentRouter) downloadHandler(c echo.Context) error {
	name := c.Param("filename")
	path, err := r.store.Resolve(documentKey(c), name)
	if err != nil {
		return err
	}
	return c.Attachment(path, name)
}
