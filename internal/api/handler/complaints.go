package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/pkg/apperror"
	"hostelhub/backend/pkg/response"
)

// SubmitComplaint files a new complaint for the logged-in student.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	sess := h.Sessions.Current()
	if sess == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var sub complaint.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	created, errs, err := h.Complaints.Submit(sess, sub)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"complaint": h.resolveImage(*created)})
}

// ListComplaints returns the filtered, sorted collection. With mine=1 it
// returns the student projection of the current session instead.
func (h *Handler) ListComplaints(c *gin.Context) {
	if c.Query("mine") == "1" {
		sess := h.Sessions.Current()
		if sess == nil {
			response.Error(c, apperror.ErrUnauthorized)
			return
		}
		c.JSON(http.StatusOK, gin.H{"complaints": h.resolveImages(h.Complaints.ForStudent(sess))})
		return
	}

	params := complaint.ListParams{
		Search:   c.Query("search"),
		Status:   models.Status(c.Query("status")),
		Priority: models.Priority(c.Query("priority")),
		Sort:     complaint.SortMode(c.DefaultQuery("sort", string(complaint.SortNewest))),
	}
	c.JSON(http.StatusOK, gin.H{"complaints": h.resolveImages(h.Complaints.List(params))})
}

type statusRequest struct {
	Status models.Status `json:"status"`
}

// UpdateStatus transitions a complaint's status. Unknown ids are a silent
// no-op, matching the store semantics.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	if err := h.Complaints.SetStatus(c.Param("id"), req.Status); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// GetStats returns the admin dashboard counters.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Complaints.Summarize())
}

// GetCategories exposes the fixed category set with its descriptions.
func (h *Handler) GetCategories(c *gin.Context) {
	out := make([]gin.H, 0, len(config.Categories))
	for _, cat := range config.Categories {
		out = append(out, gin.H{"name": cat, "description": config.CategoryDescriptions[cat]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// resolveImage swaps an asset reference back to its inline data-URI so
// clients always render displayable records.
func (h *Handler) resolveImage(c models.Complaint) models.Complaint {
	if h.Assets != nil && c.Image != "" {
		c.Image = h.Assets.Resolve(c.Image)
	}
	return c
}

func (h *Handler) resolveImages(list []models.Complaint) []models.Complaint {
	for i := range list {
		list[i] = h.resolveImage(list[i])
	}
	return list
}
