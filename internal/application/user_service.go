package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yogajuristen/api/internal/domain/entity"
	"github.com/yogajuristen/api/internal/domain/repository"
	"github.com/yogajuristen/api/pkg/helpers"
)

// ErrCredentialsInvalid names the login soft-fail: an unknown name and a
// wrong password collapse into one variant so the response never leaks
// which credential was wrong. Store failures take a different path.
var ErrCredentialsInvalid = errors.New("credentials invalid")

type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup hashes the password, issues the access token and persists the
// user. The token is generated server-side exactly once; there is no
// rotation anywhere in the system.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	token, err := helpers.NewAccessToken()
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    hash,
		AccessToken: token,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID.Hex()).Info("user created")
	}
	return u, nil
}

// Login verifies name+password and returns the stored user, including
// the access token issued at signup. Unknown name and hash mismatch
// both return ErrCredentialsInvalid; any other error is a store error.
func (s *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	u, err := s.Repo.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCredentialsInvalid
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrCredentialsInvalid
	}
	return u, nil
}
