package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/dto"
)

// ProfileHandler serves the authenticated account's profile.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Get handles GET /api/user/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	account, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.FromAccount(*account))
}

// Update handles PUT /api/user/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	account, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	account.Name = req.Name
	account.Email = req.Email
	account.Phone = req.Phone
	account.Address = req.Address

	if err := h.facade.UpdateProfile(c.Request.Context(), account, req.Password); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmailTaken):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromAccount(*account))
}
