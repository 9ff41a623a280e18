package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yogajuristen/api/config"
	"github.com/yogajuristen/api/internal/application"
	"github.com/yogajuristen/api/internal/domain/entity"
	"github.com/yogajuristen/api/pkg/validation"
)

type fakeReviewRepo struct {
	created  []entity.Review
	feed     []entity.Review
	gotLimit int64
	err      error
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	if f.err != nil {
		return f.err
	}
	r.ID = primitive.NewObjectID()
	f.created = append(f.created, *r)
	return nil
}

func (f *fakeReviewRepo) ListRecent(_ context.Context, limit int64) ([]entity.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotLimit = limit
	if int64(len(f.feed)) > limit {
		return f.feed[:limit], nil
	}
	return f.feed, nil
}

func reviewTestRouter(repo *fakeReviewRepo, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	svc := application.NewReviewService(repo, nil, 0, testLogger())
	h := NewReviewHandler(svc, cfg, testLogger())
	r := gin.New()
	r.GET("/reviews", h.List)
	r.POST("/reviews", h.Create)
	return r
}

func defaultReviewConfig() *config.Config {
	return &config.Config{ReviewsReviewerEnabled: true}
}

func TestReviewCreateEndpoint_MessageBounds(t *testing.T) {
	repo := &fakeReviewRepo{}
	r := reviewTestRouter(repo, defaultReviewConfig())

	cases := []struct {
		length int
		status int
	}{
		{4, http.StatusBadRequest},
		{5, http.StatusOK},
		{140, http.StatusOK},
		{141, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := postJSON(r, "/reviews", gin.H{"message": strings.Repeat("x", tc.length)})
		require.Equalf(t, tc.status, w.Code, "message length %d", tc.length)
		if tc.status == http.StatusBadRequest {
			body := decodeBody(t, w)
			require.Equal(t, "Could not save review", body["message"])
			errs, _ := body["errors"].(map[string]any)
			require.Contains(t, errs, "message")
		}
	}
	require.Len(t, repo.created, 2)
}

func TestReviewCreateEndpoint_ServerAssignsTimestamp(t *testing.T) {
	repo := &fakeReviewRepo{}
	r := reviewTestRouter(repo, defaultReviewConfig())

	// createdAt from the client must be ignored
	w := postJSON(r, "/reviews", gin.H{
		"message":   "such a calm place",
		"reviewer":  "Ann",
		"createdAt": "1999-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.NotEmpty(t, body["id"])
	require.Equal(t, "Ann", body["reviewer"])

	created, err := time.Parse(time.RFC3339, body["createdAt"].(string))
	require.NoError(t, err)
	require.Greater(t, created.Year(), 2000)
}

func TestReviewCreateEndpoint_ReviewerDisabled(t *testing.T) {
	repo := &fakeReviewRepo{}
	cfg := &config.Config{ReviewsReviewerEnabled: false}
	r := reviewTestRouter(repo, cfg)

	w := postJSON(r, "/reviews", gin.H{"message": "such a calm place", "reviewer": "Ann"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, repo.created[0].Reviewer)
	require.NotContains(t, decodeBody(t, w), "reviewer")
}

func TestReviewCreateEndpoint_HeartsToggle(t *testing.T) {
	repo := &fakeReviewRepo{}
	r := reviewTestRouter(repo, &config.Config{ReviewsHeartsEnabled: true})

	w := postJSON(r, "/reviews", gin.H{"message": "such a calm place"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Contains(t, body, "hearts")
	require.EqualValues(t, 0, body["hearts"])

	r = reviewTestRouter(&fakeReviewRepo{}, defaultReviewConfig())
	w = postJSON(r, "/reviews", gin.H{"message": "such a calm place"})
	require.NotContains(t, decodeBody(t, w), "hearts")
}

func TestReviewListEndpoint_NewestFirstCapped(t *testing.T) {
	now := time.Now().UTC()
	feed := make([]entity.Review, 0, 25)
	for i := 0; i < 25; i++ {
		feed = append(feed, entity.Review{
			ID:        primitive.NewObjectID(),
			Message:   "review number " + strings.Repeat("i", i+1),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	repo := &fakeReviewRepo{feed: feed}
	r := reviewTestRouter(repo, defaultReviewConfig())

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 20)
	require.EqualValues(t, application.FeedLimit, repo.gotLimit)

	prev := time.Time{}
	for i, rev := range out {
		ts, err := time.Parse(time.RFC3339, rev["createdAt"].(string))
		require.NoError(t, err)
		if i > 0 {
			require.False(t, ts.After(prev), "feed not sorted newest first")
		}
		prev = ts
	}
}

func TestReviewListEndpoint_StoreError(t *testing.T) {
	repo := &fakeReviewRepo{err: context.DeadlineExceeded}
	r := reviewTestRouter(repo, defaultReviewConfig())

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Could not load the reviews", decodeBody(t, w)["message"])
}
