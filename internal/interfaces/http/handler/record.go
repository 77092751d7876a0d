package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	appbriefing "github.com/kyrec/backend/internal/application/briefing"
	"github.com/kyrec/backend/internal/interfaces/http/middleware"
)

// RecordHandler handles KY record endpoints
type RecordHandler struct {
	BaseHandler
	recordService *appbriefing.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *appbriefing.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List handles GET /api/v1/records
func (h *RecordHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.recordService.List(c.Request.Context(), middleware.GetJWTCompanyID(c), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]RecordSummaryResponse, len(views))
	for i, view := range views {
		responses[i] = recordSummaryResponse(view)
	}
	h.Success(c, responses)
}

// Get handles GET /api/v1/records/:id
func (h *RecordHandler) Get(c *gin.Context) {
	view, err := h.recordService.Get(c.Request.Context(),
		middleware.GetJWTCompanyID(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, recordResponse(view))
}

// Create handles POST /api/v1/records
func (h *RecordHandler) Create(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "submitter_name is required")
		return
	}

	view, err := h.recordService.Create(c.Request.Context(),
		middleware.GetJWTCompanyID(c), req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, recordResponse(view))
}

// Update handles PUT /api/v1/records/:id
func (h *RecordHandler) Update(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "submitter_name is required")
		return
	}

	view, err := h.recordService.Update(c.Request.Context(),
		middleware.GetJWTCompanyID(c), c.Param("id"), req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, recordResponse(view))
}
