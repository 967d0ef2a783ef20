package handlers

import (
	"net/http"

	"palmcove/models"
	"palmcove/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitContact handles POST /api/contact and POST /api/contacts.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		getLogger(c).Warn("Invalid contact payload", zap.Error(err))
		bindError(c, err)
		return
	}

	created, err := h.Service.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListContacts handles GET /api/contacts.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, contacts)
}
