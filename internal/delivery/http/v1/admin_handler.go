package v1

import (
	"net/http"
	"strconv"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/audit"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC     domain.AdminUsecase
	approvalUC  domain.ApprovalUsecase
	portfolioUC domain.PortfolioUsecase
	auditRepo   *audit.Repository
}

// NewAdminHandler registers the admin surface: dashboard stats, the employer
// approval lifecycle and moderation toggles. auditRepo may be nil when audit
// persistence is disabled.
func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, approvalUC domain.ApprovalUsecase, portfolioUC domain.PortfolioUsecase, auditRepo *audit.Repository) {
	handler := &AdminHandler{
		adminUC:     adminUC,
		approvalUC:  approvalUC,
		portfolioUC: portfolioUC,
		auditRepo:   auditRepo,
	}

	admin := protected.Group("/admin")
	{
		admin.GET("/stats", handler.GetStats)

		employers := admin.Group("/employers")
		{
			employers.GET("", handler.ListEmployers)
			employers.GET("/:id", handler.GetEmployer)
			employers.GET("/:id/audit", handler.GetEmployerAudit)
			employers.POST("/:id/approve", handler.Approve)
			employers.POST("/:id/reject", handler.Reject)
			employers.POST("/:id/cancel-approval", handler.CancelApproval)
			employers.POST("/:id/reapprove", handler.Reapprove)
			employers.PUT("/:id/hidden", handler.SetEmployerHidden)
		}

		admin.PUT("/portfolios/:userId/hidden", handler.SetPortfolioHidden)
	}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Aggregate platform counters (Admin only)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Stats fetched", stats)
}

// ListEmployers godoc
// @Summary      List employer records
// @Description  Paginated employer list, optionally filtered by approval status (Admin only)
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "Approval status filter (pending, approved, rejected)"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Items per page"
// @Success      200     {object}  response.Envelope
// @Router       /admin/employers [get]
func (h *AdminHandler) ListEmployers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := domain.EmployerFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	records, total, err := h.approvalUC.ListEmployers(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	res := domain.PaginatedResult[domain.EmployerRecord]{
		Data:       records,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}

	response.Success(c, http.StatusOK, "Employers fetched", res)
}

// GetEmployer godoc
// @Summary      Get employer record
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /admin/employers/{id} [get]
func (h *AdminHandler) GetEmployer(c *gin.Context) {
	id, ok := h.employerID(c)
	if !ok {
		return
	}

	rec, err := h.approvalUC.GetEmployer(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer fetched", rec)
}

// GetEmployerAudit godoc
// @Summary      Employer approval history
// @Description  Audit trail of approval transitions for one employer, newest first (Admin only)
// @Tags         admin
// @Produce      json
// @Param        id     path      int  true   "Employer ID"
// @Param        limit  query     int  false  "Max records"
// @Success      200    {object}  response.Envelope
// @Router       /admin/employers/{id}/audit [get]
func (h *AdminHandler) GetEmployerAudit(c *gin.Context) {
	id, ok := h.employerID(c)
	if !ok {
		return
	}
	// Admin gate runs through the usecase so the check lives in one place
	if _, err := h.approvalUC.GetEmployer(c, id); err != nil {
		c.Error(err)
		return
	}

	if h.auditRepo == nil {
		response.Success(c, http.StatusOK, "Audit history", []audit.Record{})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.auditRepo.ListByEmployer(c.Request.Context(), id, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if records == nil {
		records = []audit.Record{}
	}

	response.Success(c, http.StatusOK, "Audit history", records)
}

// Approve godoc
// @Summary      Approve employer
// @Description  Move a pending employer to approved (Admin only)
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /admin/employers/{id}/approve [post]
func (h *AdminHandler) Approve(c *gin.Context) {
	id, ok := h.employerID(c)
	if !ok {
		return
	}

	adminID := c.GetString(string(domain.KeyUserID))
	rec, err := h.approvalUC.Approve(c, adminID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer approved", rec)
}

type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject godoc
// @Summary      Reject employer
// @Description  Move a pending employer to rejected with a reason (Admin only)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Employer ID"
// @Param        request  body      ReasonRequest  true  "Rejection reason"
// @Success      200      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /admin/employers/{id}/reject [post]
func (h *AdminHandler) Reject(c *gin.Context) {
	id, ok := h.employerID(c)
	if !ok {
		return
	}

	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Rejection reason is required"))
		return
	}

	adminID := c.GetString(string(domain.KeyUserID))
	rec, err := h.approvalUC.Reject(c, adminID, id, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer rejected", rec)
}

// CancelApproval godoc
// @Summary      Cancel employer approval
// @Description  Revoke a granted approval with a reason (Admin only)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Employer ID"
// @Param        request  body      ReasonRequest  true  "Cancellation reason"
// @Success      200      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /admin/employers/{id}/cancel-approval [post]
func (h *AdminHandler) CancelApproval(c *gin.Context) {
	id, ok := h.employerID(c)
	if !ok {
		return
	}

	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Cancellation reason is required"))
		return
	}

	adminID := c.GetString(string(domain.KeyUserID))
	rec, err := h.approvalUC.CancelApproval(c, adminID, id, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer approval canceled", rec)
}

// Reapprove godoc
// @Summary      Reapprove employer
// @Description  Move a rejected employer back to approved (Admin only)
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /admin/employers/{id}/reapprove [post]
func (h *AdminHandler) Reapprove(c *gin.Context) {
	id, ok := h.employerID(c)
	if !ok {
		return
	}

	adminID := c.GetString(string(domain.KeyUserID))
	rec, err := h.approvalUC.Reapprove(c, adminID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer reapproved", rec)
}

type HiddenRequest struct {
	Hidden *bool `json:"hidden" binding:"required"`
}

// SetEmployerHidden godoc
// @Summary      Hide or unhide employer
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Employer ID"
// @Param        request  body      HiddenRequest  true  "Hidden flag"
// @Success      200      {object}  response.Envelope
// @Router       /admin/employers/{id}/hidden [put]
func (h *AdminHandler) SetEmployerHidden(c *gin.Context) {
	id, ok := h.employerID(c)
	if !ok {
		return
	}

	var req HiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Hidden flag is required"))
		return
	}

	adminID := c.GetString(string(domain.KeyUserID))
	if err := h.approvalUC.SetHidden(c, adminID, id, *req.Hidden); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer visibility updated", nil)
}

// SetPortfolioHidden godoc
// @Summary      Hide or unhide portfolio
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userId   path      string         true  "Portfolio owner user ID"
// @Param        request  body      HiddenRequest  true  "Hidden flag"
// @Success      200      {object}  response.Envelope
// @Router       /admin/portfolios/{userId}/hidden [put]
func (h *AdminHandler) SetPortfolioHidden(c *gin.Context) {
	ownerID := c.Param("userId")

	var req HiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Hidden flag is required"))
		return
	}

	adminID := c.GetString(string(domain.KeyUserID))
	if err := h.portfolioUC.SetHidden(c, adminID, ownerID, *req.Hidden); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio visibility updated", nil)
}

func (h *AdminHandler) employerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid employer ID"))
		return 0, false
	}
	return id, true
}
