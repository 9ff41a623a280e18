package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/yogajuristen/api/config"
	"github.com/yogajuristen/api/internal/domain/repository"
	handlers "github.com/yogajuristen/api/internal/interface/http"
	"github.com/yogajuristen/api/internal/interface/middleware"
)

// ReviewModule wires the public feed and review creation. Whether
// creation sits behind the auth gate is a config decision, not a
// hard-coded one; the deployed revisions disagreed.
type ReviewModule struct {
	Handler *handlers.ReviewHandler
	Users   repository.UserRepository
	Cfg     *config.Config
}

func NewReviewModule(h *handlers.ReviewHandler, users repository.UserRepository, cfg *config.Config) *ReviewModule {
	return &ReviewModule{Handler: h, Users: users, Cfg: cfg}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.GET("/reviews", m.Handler.List)
	if m.Cfg.ReviewsRequireAuth {
		rg.POST("/reviews", middleware.Auth(m.Users), m.Handler.Create)
	} else {
		rg.POST("/reviews", m.Handler.Create)
	}
}
