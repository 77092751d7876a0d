package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	appbriefing "github.com/kyrec/backend/internal/application/briefing"
	"github.com/kyrec/backend/internal/interfaces/http/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles record document downloads
type ExportHandler struct {
	BaseHandler
	exportService *appbriefing.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *appbriefing.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles GET /api/v1/records/:id/export
func (h *ExportHandler) Export(c *gin.Context) {
	result, err := h.exportService.Export(c.Request.Context(),
		middleware.GetJWTCompanyID(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// RFC 5987 encoding so the Japanese filename survives the header
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(result.Filename)))
	c.Data(http.StatusOK, xlsxContentType, result.Data)
}
