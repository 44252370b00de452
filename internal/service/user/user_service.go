package user

import (
	"context"

	"devpulse/internal/http/api"
	"devpulse/internal/models"
	"devpulse/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	Create(ctx context.Context, user *models.User) (uuid.UUID, error)
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
}

type UserService struct {
	trm   service.TransactionManager
	users UserProvider
}

func NewUserService(trm service.TransactionManager, users UserProvider) *UserService {
	return &UserService{
		trm:   trm,
		users: users,
	}
}

func (s *UserService) Create(ctx context.Context, githubID, accessToken string, fcmToken *string) (*api.UserSchema, error) {
	user := &models.User{
		GithubID:    githubID,
		AccessToken: accessToken,
		FcmToken:    fcmToken,
	}

	resp := &api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		userID, err := s.users.Create(ctx, user)
		if err != nil {
			return err
		}

		resp.ID = userID.String()
		resp.GithubID = githubID
		resp.FcmToken = fcmToken
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*api.UserSchema, error) {
	resp := &api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		user, err := s.users.GetById(ctx, userID)
		if err != nil {
			return err
		}

		*resp = toUserSchema(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]api.UserSchema, error) {
	resp := []api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		users, err := s.users.List(ctx, skip, limit)
		if err != nil {
			return err
		}

		for _, u := range users {
			resp = append(resp, toUserSchema(u))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toUserSchema(u *models.User) api.UserSchema {
	return api.UserSchema{
		ID:       u.ID.String(),
		GithubID: u.GithubID,
		FcmToken: u.FcmToken,
	}
}
