package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository/mocks"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("registered", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *entity.User) (uuid.UUID, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test_password")))
			return uid, nil
		})
		user, err := us.Register(ctx, &service.RegisterRequest{Name: "test_user", Password: "test_password"})
		require.NoError(t, err)
		assert.Equal(t, uid, user.ID)
		assert.Equal(t, "test_user", user.Name)
	})
	t.Run("already exists", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrUserExists)
		_, err := us.Register(ctx, &service.RegisterRequest{Name: "test_user", Password: "test_password"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("short password", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Name: "test_user", Password: "12345"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("bad name", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Name: "_user", Password: "test_password"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash("test_password")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "test_user", PasswordHash: hash}

	testCases := []struct {
		Desc         string
		Password     string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Password: "test_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(user, nil)
			},
		},
		{
			Desc:     "wrong password",
			Password: "wrong_password",
			Error:    errorvalues.ErrWrongCredentials,
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(user, nil)
			},
		},
		{
			Desc:     "unknown user",
			Password: "test_password",
			Error:    errorvalues.ErrWrongCredentials,
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:     "repository error",
			Password: "test_password",
			Error:    errors.New("repository searching error: db error"),
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(nil, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := us.Login(ctx, user.Name, tc.Password)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, result)
		})
	}
}

func TestGetUserByID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	uid := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
	_, err := us.GetByID(context.Background(), uid)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
