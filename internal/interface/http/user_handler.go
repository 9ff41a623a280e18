package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogajuristen/api/internal/application"
	"github.com/yogajuristen/api/internal/domain/repository"
	"github.com/yogajuristen/api/internal/interface/middleware"
	"github.com/yogajuristen/api/pkg/response"
	"github.com/yogajuristen/api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

type signupResponse struct {
	Message     string `json:"message"`
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

// Signup POST /users
// The one and only place the access token is revealed.
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Could not create user.", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if de, ok := repository.AsDuplicate(err); ok {
			response.Fail(c, http.StatusBadRequest, "Could not create user.", map[string]string{de.Field: "must be unique"})
			return
		}
		response.Fail(c, http.StatusBadRequest, "Could not create user.", err.Error())
		return
	}
	c.JSON(http.StatusCreated, signupResponse{
		Message:     "User created.",
		UserID:      u.ID.Hex(),
		AccessToken: u.AccessToken,
	})
}

type loginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

type loginFailedResponse struct {
	Message string `json:"message"`
}

// Login POST /sessions
// Bad credentials soft-fail with HTTP 200 and a message body; only
// store errors produce a 4xx. The returned token is the one issued at
// signup, never a fresh one.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Could not log in", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Login(c.Request.Context(), req.Name, req.Password)
	if errors.Is(err, application.ErrCredentialsInvalid) {
		c.JSON(http.StatusOK, loginFailedResponse{Message: "Could not log in, please try again"})
		return
	}
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Could not log in", err.Error())
		return
	}
	c.JSON(http.StatusCreated, loginResponse{UserID: u.ID.Hex(), AccessToken: u.AccessToken})
}

type secretPageResponse struct {
	LoginMessage string `json:"loginMessage"`
}

// SecretPage GET /users/:id
// Answers for the identity the auth gate resolved; the path id is not
// re-validated, matching the original contract.
func (h *UserHandler) SecretPage(c *gin.Context) {
	name := c.GetString(middleware.CtxUserName)
	c.JSON(http.StatusCreated, secretPageResponse{
		LoginMessage: "This is a super secret message for " + name,
	})
}
