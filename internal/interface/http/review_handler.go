package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogajuristen/api/config"
	"github.com/yogajuristen/api/internal/application"
	"github.com/yogajuristen/api/internal/domain/entity"
	"github.com/yogajuristen/api/pkg/response"
	"github.com/yogajuristen/api/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, cfg *config.Config, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Cfg: cfg, Logger: logger}
}

type createReviewRequest struct {
	Message  string `json:"message" binding:"required,min=5,max=140"`
	Reviewer string `json:"reviewer" binding:"omitempty,max=140"`
}

// reviewResponse is the wire shape of a saved review. Hearts is a
// pointer so the field only appears when the counter is enabled.
type reviewResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Reviewer  string    `json:"reviewer,omitempty"`
	Hearts    *int      `json:"hearts,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *ReviewHandler) toResponse(rev entity.Review) reviewResponse {
	resp := reviewResponse{
		ID:        rev.ID.Hex(),
		Message:   rev.Message,
		Reviewer:  rev.Reviewer,
		CreatedAt: rev.CreatedAt,
	}
	if h.Cfg.ReviewsHeartsEnabled {
		hearts := rev.Hearts
		resp.Hearts = &hearts
	}
	return resp
}

// List GET /reviews
func (h *ReviewHandler) List(c *gin.Context) {
	revs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Could not load the reviews", err.Error())
		return
	}
	out := make([]reviewResponse, 0, len(revs))
	for _, rev := range revs {
		out = append(out, h.toResponse(rev))
	}
	c.JSON(http.StatusOK, out)
}

// Create POST /reviews
// The message bounds are a content policy checked at the binding
// boundary; the reviewer field is only honored when enabled.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Could not save review", validation.ToDetails(err))
		return
	}
	reviewer := ""
	if h.Cfg.ReviewsReviewerEnabled {
		reviewer = req.Reviewer
	}
	rev, err := h.Svc.Create(c.Request.Context(), req.Message, reviewer)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Could not save review", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.toResponse(*rev))
}
