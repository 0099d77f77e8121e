package v1

import (
	"net/http"
	"strconv"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryUC domain.InquiryUsecase
}

func NewInquiryHandler(protected *gin.RouterGroup, inquiryUC domain.InquiryUsecase) {
	handler := &InquiryHandler{inquiryUC: inquiryUC}

	inquiries := protected.Group("/inquiries")
	{
		inquiries.POST("", handler.Send)
		inquiries.GET("/received", handler.ListReceived)
		inquiries.GET("/sent", handler.ListSent)
		inquiries.POST("/:id/read", handler.MarkRead)
		inquiries.POST("/:id/respond", handler.Respond)
		inquiries.POST("/:id/decide", handler.Decide)
	}
}

// Send godoc
// @Summary      Send job inquiry
// @Description  Send an inquiry to a job seeker's portfolio; requires an approved employer account
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SendInquiryRequest  true  "Inquiry"
// @Success      201      {object}  response.Envelope
// @Failure      403      {object}  response.Envelope
// @Failure      404      {object}  response.Envelope
// @Router       /inquiries [post]
func (h *InquiryHandler) Send(c *gin.Context) {
	var req domain.SendInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	inq, err := h.inquiryUC.Send(c, userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Inquiry sent", inq)
}

// ListReceived godoc
// @Summary      List received inquiries
// @Description  Inquiries sent to the calling job seeker, newest first
// @Tags         inquiries
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /inquiries/received [get]
func (h *InquiryHandler) ListReceived(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	inquiries, err := h.inquiryUC.ListForJobSeeker(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	if inquiries == nil {
		inquiries = []domain.JobInquiry{}
	}

	response.Success(c, http.StatusOK, "Inquiries fetched", inquiries)
}

// ListSent godoc
// @Summary      List sent inquiries
// @Description  Inquiries sent by the calling employer, newest first
// @Tags         inquiries
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /inquiries/sent [get]
func (h *InquiryHandler) ListSent(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	inquiries, err := h.inquiryUC.ListForEmployer(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	if inquiries == nil {
		inquiries = []domain.JobInquiry{}
	}

	response.Success(c, http.StatusOK, "Inquiries fetched", inquiries)
}

// MarkRead godoc
// @Summary      Mark inquiry as read
// @Tags         inquiries
// @Produce      json
// @Param        id   path      int  true  "Inquiry ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /inquiries/{id}/read [post]
func (h *InquiryHandler) MarkRead(c *gin.Context) {
	id, ok := h.inquiryID(c)
	if !ok {
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	inq, err := h.inquiryUC.MarkRead(c, userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Inquiry marked as read", inq)
}

type RespondRequest struct {
	Message string `json:"message" binding:"required"`
}

// Respond godoc
// @Summary      Respond to inquiry
// @Description  Send a response message; only a read inquiry can be responded to
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Inquiry ID"
// @Param        request  body      RespondRequest  true  "Response message"
// @Success      200      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /inquiries/{id}/respond [post]
func (h *InquiryHandler) Respond(c *gin.Context) {
	id, ok := h.inquiryID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Response message is required"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	inq, err := h.inquiryUC.Respond(c, userID, id, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Response sent", inq)
}

type DecideRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// Decide godoc
// @Summary      Decide on inquiry
// @Description  Accept or reject a responded inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Inquiry ID"
// @Param        request  body      DecideRequest  true  "Decision"
// @Success      200      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /inquiries/{id}/decide [post]
func (h *InquiryHandler) Decide(c *gin.Context) {
	id, ok := h.inquiryID(c)
	if !ok {
		return
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Decision is required"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	inq, err := h.inquiryUC.Decide(c, userID, id, *req.Accept)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Decision recorded", inq)
}

func (h *InquiryHandler) inquiryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid inquiry ID"))
		return 0, false
	}
	return id, true
}
