package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUC domain.FavoriteUsecase
}

func NewFavoriteHandler(protected *gin.RouterGroup, favoriteUC domain.FavoriteUsecase) {
	handler := &FavoriteHandler{favoriteUC: favoriteUC}

	favorites := protected.Group("/favorites")
	{
		favorites.GET("/:kind", handler.List)
		favorites.PUT("/:kind/:targetId", handler.Add)
		favorites.DELETE("/:kind/:targetId", handler.Remove)
		favorites.GET("/:kind/:targetId/status", handler.Status)
	}
}

// Add godoc
// @Summary      Add favorite
// @Description  Favorite a company or talent. Idempotent: repeating succeeds.
// @Tags         favorites
// @Produce      json
// @Param        kind      path      string  true  "Favorite kind (company, talent)"
// @Param        targetId  path      string  true  "Target user ID"
// @Success      200       {object}  response.Envelope
// @Failure      403       {object}  response.Envelope
// @Failure      404       {object}  response.Envelope
// @Router       /favorites/{kind}/{targetId} [put]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	kind := domain.FavoriteKind(c.Param("kind"))

	if err := h.favoriteUC.AddFavorite(c, userID, kind, c.Param("targetId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite added", nil)
}

// Remove godoc
// @Summary      Remove favorite
// @Description  Unfavorite a target. Removing a non-favorite is a no-op.
// @Tags         favorites
// @Produce      json
// @Param        kind      path      string  true  "Favorite kind (company, talent)"
// @Param        targetId  path      string  true  "Target user ID"
// @Success      200       {object}  response.Envelope
// @Router       /favorites/{kind}/{targetId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	kind := domain.FavoriteKind(c.Param("kind"))

	if err := h.favoriteUC.RemoveFavorite(c, userID, kind, c.Param("targetId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite removed", nil)
}

// List godoc
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Param        kind  path      string  true  "Favorite kind (company, talent)"
// @Success      200   {object}  response.Envelope
// @Router       /favorites/{kind} [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	kind := domain.FavoriteKind(c.Param("kind"))

	ids, err := h.favoriteUC.ListFavorites(c, userID, kind)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorites fetched", gin.H{"ids": ids})
}

// Status godoc
// @Summary      Check favorite status
// @Tags         favorites
// @Produce      json
// @Param        kind      path      string  true  "Favorite kind (company, talent)"
// @Param        targetId  path      string  true  "Target user ID"
// @Success      200       {object}  response.Envelope
// @Router       /favorites/{kind}/{targetId}/status [get]
func (h *FavoriteHandler) Status(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	kind := domain.FavoriteKind(c.Param("kind"))

	favored, err := h.favoriteUC.IsFavorite(c, userID, kind, c.Param("targetId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite status", gin.H{"favorite": favored})
}
