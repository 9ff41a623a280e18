package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/yogajuristen/api/internal/domain/entity"
	"github.com/yogajuristen/api/internal/domain/repository"
	"github.com/yogajuristen/api/pkg/helpers"
)

// FeedLimit caps the public review feed.
const FeedLimit = 20

const feedCacheKey = "reviews:feed"

// ReviewService serves the guestbook feed. Redis is optional: when nil
// every read goes straight to the store, and a failing cache never
// fails a request.
type ReviewService struct {
	Repo     repository.ReviewRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

// Create persists a review with a server-assigned creation time.
func (s *ReviewService) Create(ctx context.Context, message, reviewer string) (*entity.Review, error) {
	rev := &entity.Review{
		Message:   message,
		Reviewer:  reviewer,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, rev); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := s.Redis.Del(ctx, feedCacheKey).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("review feed cache invalidation failed")
		}
	}
	return rev, nil
}

// List returns at most FeedLimit reviews, newest first.
func (s *ReviewService) List(ctx context.Context) ([]entity.Review, error) {
	if s.Redis != nil {
		var cached []entity.Review
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, feedCacheKey, &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("review feed cache read failed")
		}
		if err == nil && ok {
			return cached, nil
		}
	}
	out, err := s.Repo.ListRecent(ctx, FeedLimit)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, feedCacheKey, out, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("review feed cache write failed")
		}
	}
	return out, nil
}
