package handler

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/kyrec/backend/internal/application/identity"
	"github.com/kyrec/backend/internal/interfaces/http/middleware"
)

// CompanyHandler handles administrative account endpoints and the submitter
// name candidate lookup
type CompanyHandler struct {
	BaseHandler
	accountService *appidentity.AccountService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(accountService *appidentity.AccountService) *CompanyHandler {
	return &CompanyHandler{accountService: accountService}
}

// List handles GET /api/v1/companies
func (h *CompanyHandler) List(c *gin.Context) {
	infos, err := h.accountService.ListCompanies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]CompanyResponse, len(infos))
	for i, info := range infos {
		responses[i] = companyResponse(info)
	}
	h.Success(c, responses)
}

// SetEnabled handles PUT /api/v1/companies/:id/enabled
func (h *CompanyHandler) SetEnabled(c *gin.Context) {
	var req SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "enabled is required")
		return
	}

	info, err := h.accountService.SetEnabled(c.Request.Context(), appidentity.SetEnabledInput{
		CompanyID: c.Param("id"),
		Enabled:   *req.Enabled,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, companyResponse(*info))
}

// ResetPassword handles POST /api/v1/companies/:id/password-reset
func (h *CompanyHandler) ResetPassword(c *gin.Context) {
	result, err := h.accountService.ResetPassword(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ResetPasswordResponse{
		CompanyID: result.CompanyID,
		Password:  result.Password,
	})
}

// ListNameCandidates handles GET /api/v1/name-candidates
func (h *CompanyHandler) ListNameCandidates(c *gin.Context) {
	names, err := h.accountService.ListNameCandidates(c.Request.Context(),
		middleware.GetJWTCompanyID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, names)
}
