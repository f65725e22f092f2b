package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/backend/internal/models"
	"hostelhub/backend/pkg/apperror"
	"hostelhub/backend/pkg/response"
)

type loginRequest struct {
	Name string      `json:"name"`
	Room string      `json:"room"`
	Role models.Role `json:"role"`
}

// Login validates the identity, creates or merges the session and returns it
// together with a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	sess, errs, err := h.Sessions.Login(req.Name, req.Room, req.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	token, err := h.generateSessionToken(sess)
	if err != nil {
		response.Error(c, apperror.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sess, "token": token})
}

// Logout clears the whole persisted state.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetProfile returns the current session.
func (h *Handler) GetProfile(c *gin.Context) {
	sess := h.Sessions.Current()
	if sess == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess})
}

type profileRequest struct {
	Name       string `json:"name"`
	Room       string `json:"room"`
	ProfilePic string `json:"profilePic"`
}

// UpdateProfile changes name, room and profile picture on the live session.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	sess, errs, err := h.Sessions.UpdateProfile(req.Name, req.Room, req.ProfilePic)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sess})
}
