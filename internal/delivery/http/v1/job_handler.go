package v1

import (
	"net/http"
	"strconv"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public job board
	public.GET("/jobs/public", handler.ListPublic)

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.GET("/mine", handler.ListOwn)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

// ListPublic godoc
// @Summary      Public job board
// @Description  Active postings from approved, visible employers
// @Tags         jobs
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        pageSize  query     int  false  "Items per page"
// @Success      200       {object}  response.Envelope
// @Router       /jobs/public [get]
func (h *JobHandler) ListPublic(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	jobs, total, err := h.jobUC.ListPublicJobs(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	res := domain.PaginatedResult[domain.JobWithCompany]{
		Data:       jobs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}

	response.Success(c, http.StatusOK, "Jobs fetched", res)
}

// Create godoc
// @Summary      Create job posting
// @Description  Create a posting; requires an approved employer account
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.Job  true  "Job posting"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c, userID, &job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListOwn godoc
// @Summary      List own job postings
// @Tags         jobs
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        pageSize  query     int  false  "Items per page"
// @Success      200       {object}  response.Envelope
// @Router       /jobs/mine [get]
func (h *JobHandler) ListOwn(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	userID := c.GetString(string(domain.KeyUserID))
	jobs, total, err := h.jobUC.ListOwnJobs(c, userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	res := domain.PaginatedResult[domain.Job]{
		Data:       jobs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}

	response.Success(c, http.StatusOK, "Jobs fetched", res)
}

// Get godoc
// @Summary      Get job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job fetched", job)
}

// Update godoc
// @Summary      Update job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      domain.Job  true  "Job posting"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	job.ID = id

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.UpdateJob(c, userID, &job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c, userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

func (h *JobHandler) jobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return 0, false
	}
	return id, true
}
