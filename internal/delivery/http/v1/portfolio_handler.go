package v1

import (
	"net/http"
	"strconv"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(protected *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	portfolios := protected.Group("/portfolios")
	{
		portfolios.POST("", handler.Register)
		portfolios.GET("", handler.List)
		portfolios.GET("/:userId", handler.Get)
	}
}

type RegisterPortfolioBody struct {
	domain.RegisterPortfolioRequest
	// OwnerID lets an admin register on a job seeker's behalf; ignored for
	// job seeker callers.
	OwnerID string `json:"owner_id"`
}

// Register godoc
// @Summary      Register portfolio
// @Description  Publish the portfolio projection derived from the caller's profile
// @Tags         portfolios
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterPortfolioBody  true  "Registration metadata"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      403      {object}  response.Envelope
// @Router       /portfolios [post]
func (h *PortfolioHandler) Register(c *gin.Context) {
	var body RegisterPortfolioBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	p, err := h.portfolioUC.Register(c, body.OwnerID, body.RegisterPortfolioRequest)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Portfolio registered", p)
}

// List godoc
// @Summary      Browse portfolios
// @Description  Paginated portfolio browsing; requires an approved employer or admin account
// @Tags         portfolios
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        pageSize  query     int  false  "Items per page"
// @Success      200       {object}  response.Envelope
// @Failure      403       {object}  response.Envelope
// @Router       /portfolios [get]
func (h *PortfolioHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	viewerID := c.GetString(string(domain.KeyUserID))
	portfolios, total, err := h.portfolioUC.List(c, viewerID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	res := domain.PaginatedResult[domain.Portfolio]{
		Data:       portfolios,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}

	response.Success(c, http.StatusOK, "Portfolios fetched", res)
}

// Get godoc
// @Summary      Get one portfolio
// @Description  Owners always see their own portfolio; other viewers need access
// @Tags         portfolios
// @Produce      json
// @Param        userId  path      string  true  "Portfolio owner user ID"
// @Success      200     {object}  response.Envelope
// @Failure      403     {object}  response.Envelope
// @Failure      404     {object}  response.Envelope
// @Router       /portfolios/{userId} [get]
func (h *PortfolioHandler) Get(c *gin.Context) {
	ownerID := c.Param("userId")
	viewerID := c.GetString(string(domain.KeyUserID))

	p, err := h.portfolioUC.Get(c, viewerID, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio fetched", p)
}
