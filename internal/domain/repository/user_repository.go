package repository

import (
	"context"

	"github.com/yogajuristen/api/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
// Users are created once and never updated or deleted; the auth gate
// only ever reads them.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetByToken(ctx context.Context, token string) (*entity.User, error)
}
