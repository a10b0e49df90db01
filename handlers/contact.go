package handlers

import (
	"net/http"

	"ecoskip/models"
	"ecoskip/services/contact"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(s contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: s}
}

// SubmitContactHandler handles POST /api/contact.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var msg models.ContactSubmission
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := h.Service.Submit(c.Request.Context(), msg); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
