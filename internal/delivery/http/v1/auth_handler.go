package v1

import (
	"net/http"

	"go-jobmatch-backend/config"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	auth := protected.Group("/auth")
	{
		auth.POST("/sync", handler.SyncProfile)
		auth.GET("/me", handler.Me)
		auth.POST("/complete-setup", handler.CompleteSetup)
	}
}

// SyncProfile godoc
// @Summary      Sync user profile
// @Description  Provision the local user row from a verified identity token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /auth/sync [post]
func (h *AuthHandler) SyncProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	user := &domain.User{
		ID:    userID,
		Email: email,
	}

	if err := h.authUC.EnsureUserExists(c, user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile synced", user)
}

// Me godoc
// @Summary      Current user
// @Description  Get the authenticated user's account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

type CompleteSetupRequest struct {
	Role string `json:"role" binding:"required,oneof=jobseeker employer"`
	Name string `json:"name" binding:"required"`
}

// CompleteSetup godoc
// @Summary      Complete first-login setup
// @Description  Assign the account role (once) and display name
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      CompleteSetupRequest  true  "Role and display name"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /auth/complete-setup [post]
func (h *AuthHandler) CompleteSetup(c *gin.Context) {
	var req CompleteSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.CompleteSetup(c, userID, req.Role, req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Setup completed", user)
}
