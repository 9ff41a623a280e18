package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogajuristen/api/internal/domain/repository"
	"github.com/yogajuristen/api/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUserName = "userName"
)

// Auth gates protected routes on the raw Authorization header: the
// value is matched by equality against stored access tokens. No match
// (including a missing header) is a 403; a failing lookup is a 400 so
// the two stay distinguishable. The matched user is never mutated.
func Auth(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			response.AbortFail(c, http.StatusForbidden, "you need to log in to see this page", nil)
			return
		}
		u, err := users.GetByToken(c.Request.Context(), token)
		if errors.Is(err, repository.ErrNotFound) {
			response.AbortFail(c, http.StatusForbidden, "you need to log in to see this page", nil)
			return
		}
		if err != nil {
			response.AbortFail(c, http.StatusBadRequest, "access denied", err.Error())
			return
		}
		c.Set(CtxUserID, u.ID.Hex())
		c.Set(CtxUserName, u.Name)
		c.Next()
	}
}
