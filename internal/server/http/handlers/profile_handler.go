package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feastline/orderd/internal/server/http/dto"
)

// ProfileHandler manages delivery profile endpoints.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Save handles POST /api/profile.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed payload"})
		return
	}

	profile, err := h.facade.SaveProfile(c.Request.Context(), Credential(c), req.Name, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileEnvelope{Profile: dto.FromProfile(profile)})
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.facade.Profile(c.Request.Context(), Credential(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileEnvelope{Profile: dto.FromProfile(profile)})
}
