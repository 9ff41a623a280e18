package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogajuristen/api/internal/application"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

// contactRequest only requires presence; the original forwards whatever
// reply address the form supplies, so no format check on email here.
type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type contactResponse struct {
	Status string `json:"status"`
}

// Contact POST /contact
// The outcome collapses to success/fail with HTTP 200 either way; the
// service keeps the failure reason for the logs.
func (h *ContactHandler) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, contactResponse{Status: "fail"})
		return
	}
	res := h.Svc.Dispatch(c.Request.Context(), req.Name, req.Email, req.Message)
	if !res.OK {
		c.JSON(http.StatusOK, contactResponse{Status: "fail"})
		return
	}
	c.JSON(http.StatusOK, contactResponse{Status: "success"})
}
