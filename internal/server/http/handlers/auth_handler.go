package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/dto"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/middleware"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/usecase"
)

// AuthHandler processes registration, login and password recovery.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		var fieldErrs usecase.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: fieldErrs})
		case errors.Is(err, domainErrors.ErrEmailTaken):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Recover handles POST /api/user/recover.
func (h *AuthHandler) Recover(c *gin.Context) {
	var req dto.RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	message, err := h.facade.RecoverPassword(c.Request.Context(), req.Email)
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// Reset handles POST /api/user/reset.
func (h *AuthHandler) Reset(c *gin.Context) {
	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.ResetPassword(c.Request.Context(), req.Email, req.Code, req.Password)
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// writeRemoteError maps recovery failures onto HTTP statuses, exposing the
// normalized diagnostic message from the call adapter.
func writeRemoteError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrValidation) {
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusBadGateway, dto.MessageResponse{Message: err.Error()})
}
