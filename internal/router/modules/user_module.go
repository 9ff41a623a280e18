package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/yogajuristen/api/internal/domain/repository"
	handlers "github.com/yogajuristen/api/internal/interface/http"
	"github.com/yogajuristen/api/internal/interface/middleware"
)

// UserModule wires signup, login and the token-gated secret page.
// Public: POST /users, POST /sessions
// Protected: GET /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repository.UserRepository
}

func NewUserModule(h *handlers.UserHandler, users repository.UserRepository) *UserModule {
	return &UserModule{Handler: h, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Signup)
	rg.POST("/sessions", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users))
	{
		auth.GET("/users/:id", m.Handler.SecretPage)
	}
}
