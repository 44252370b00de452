package user_test

import (
	"context"
	"errors"
	"testing"

	"devpulse/internal/models"
	repo "devpulse/internal/repository"
	"devpulse/internal/service/mocks"
	u "devpulse/internal/service/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_Create_Success(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockUsers := mocks.NewUserProvider(t)

	userID := uuid.New()
	fcmToken := "fcm-token"

	mockUsers.On("Create", ctx, mock.MatchedBy(func(usr *models.User) bool {
		return usr.GithubID == "12345" && usr.AccessToken == "gho_token" && usr.FcmToken == &fcmToken
	})).Return(userID, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).
		Once()

	service := u.NewUserService(mockTRM, mockUsers)
	resp, err := service.Create(ctx, "12345", "gho_token", &fcmToken)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, userID.String(), resp.ID)
	assert.Equal(t, "12345", resp.GithubID)
	assert.Equal(t, &fcmToken, resp.FcmToken)
}

func TestUserService_Create_Duplicate(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockUsers := mocks.NewUserProvider(t)

	mockUsers.On("Create", ctx, mock.Anything).Return(uuid.Nil, repo.ErrUserExists).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			err := fn(ctx)
			assert.True(t, errors.Is(err, repo.ErrUserExists))
		}).
		Return(repo.ErrUserExists).
		Once()

	service := u.NewUserService(mockTRM, mockUsers)
	resp, err := service.Create(ctx, "12345", "gho_token", nil)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, repo.ErrUserExists))
}

func TestUserService_Get_Success(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockUsers := mocks.NewUserProvider(t)

	userID := uuid.New()
	mockUsers.On("GetById", ctx, userID).Return(&models.User{ID: userID, GithubID: "12345"}, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).
		Once()

	service := u.NewUserService(mockTRM, mockUsers)
	resp, err := service.Get(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, userID.String(), resp.ID)
	assert.Equal(t, "12345", resp.GithubID)
}

func TestUserService_List_Empty(t *testing.T) {
	ctx := context.Background()

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockUsers := mocks.NewUserProvider(t)

	mockUsers.On("List", ctx, 0, 100).Return([]*models.User{}, nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).
		Once()

	service := u.NewUserService(mockTRM, mockUsers)
	resp, err := service.List(ctx, 0, 100)

	assert.NoError(t, err)
	assert.Empty(t, resp)
}
