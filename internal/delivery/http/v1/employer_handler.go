package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(protected *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	employers := protected.Group("/employers")
	{
		employers.GET("/me", handler.GetOwn)
		employers.PUT("/me", handler.Upsert)
	}
}

// GetOwn godoc
// @Summary      Get own employer record
// @Description  Get the caller's company record including approval status
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /employers/me [get]
func (h *EmployerHandler) GetOwn(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	rec, err := h.employerUC.GetOwnEmployer(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer record", rec)
}

// Upsert godoc
// @Summary      Update own company record
// @Description  Create or update the caller's company details. Approval status is never affected.
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        company  body      domain.Company  true  "Company details"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      403      {object}  response.Envelope
// @Router       /employers/me [put]
func (h *EmployerHandler) Upsert(c *gin.Context) {
	var company domain.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	rec, err := h.employerUC.UpsertEmployer(c, userID, &company)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company record saved", rec)
}
