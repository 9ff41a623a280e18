package repository

import (
	"context"

	"github.com/yogajuristen/api/internal/domain/entity"
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	ListRecent(ctx context.Context, limit int64) ([]entity.Review, error)
}
