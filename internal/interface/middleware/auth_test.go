package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yogajuristen/api/internal/domain/entity"
	"github.com/yogajuristen/api/internal/domain/repository"
)

type fakeUserRepo struct {
	byToken map[string]*entity.User
	err     error
}

func (f *fakeUserRepo) Create(context.Context, *entity.User) error { return errors.New("read-only") }

func (f *fakeUserRepo) GetByName(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByToken(_ context.Context, token string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byToken[token]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func gateRouter(repo repository.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", Auth(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": c.GetString(CtxUserName)})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_NoMatchIsForbidden(t *testing.T) {
	r := gateRouter(&fakeUserRepo{byToken: map[string]*entity.User{}})

	for _, token := range []string{"", "deadbeef"} {
		w := doGet(r, token)
		require.Equal(t, http.StatusForbidden, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "you need to log in to see this page", body["message"])
	}
}

func TestAuth_StoreErrorIsBadRequest(t *testing.T) {
	r := gateRouter(&fakeUserRepo{err: errors.New("topology closed")})

	w := doGet(r, "sometoken")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "access denied", body["message"])
	require.Contains(t, body["errors"], "topology closed")
}

func TestAuth_MatchExposesIdentity(t *testing.T) {
	u := &entity.User{ID: primitive.NewObjectID(), Name: "Ann", AccessToken: "tok"}
	r := gateRouter(&fakeUserRepo{byToken: map[string]*entity.User{"tok": u}})

	w := doGet(r, "tok")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Ann", body["name"])
}
