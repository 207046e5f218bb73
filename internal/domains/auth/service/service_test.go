package service_test

import (
	"context"
	"errors"
	"testing"

	"travelog/config"
	"travelog/infras/otel/mocks"
	"travelog/infras/token"
	"travelog/internal/domains/auth/model/dto"
	"travelog/internal/domains/auth/service"
	userMocks "travelog/internal/domains/user/mocks"
	userModel "travelog/internal/domains/user/model"
	"travelog/shared/failure"
	"travelog/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "travelog"
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.MaxAgeDays = 7

	return cfg
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := newTestConfig()

	svc := service.New(mockRepo, cfg, mockOtel, token.New(cfg))

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Email:    "a@b.com",
				UserName: "Alice",
				Password: "pw123456",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), "a@b.com").
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "a@b.com", user.Email)
						assert.Equal(t, "Alice", user.UserName)
						assert.NoError(t, password.Verify("pw123456", user.PasswordHash))

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Email:    "a@b.com",
				UserName: "Alice",
				Password: "pw123456",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), "a@b.com").
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "exist check error",
			req: dto.RegisterRequest{
				Email:    "a@b.com",
				UserName: "Alice",
				Password: "pw123456",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), "a@b.com").
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.req.Email, res.Email)
				assert.Equal(t, tt.req.UserName, res.UserName)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := newTestConfig()
	tokenService := token.New(cfg)

	svc := service.New(mockRepo, cfg, mockOtel, tokenService)

	hash, err := password.Hash("pw123456")
	require.NoError(t, err)

	account := userModel.User{
		Email:        "a@b.com",
		UserName:     "Alice",
		PasswordHash: hash,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "a@b.com", Password: "pw123456"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "a@b.com").
					Return(account, nil)
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "a@b.com", Password: "wrong"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "a@b.com").
					Return(account, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "unknown account",
			req:  dto.LoginRequest{Email: "nobody@b.com", Password: "pw123456"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "nobody@b.com").
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "a@b.com", Password: "pw123456"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "a@b.com").
					Return(userModel.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, sessionToken, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, account.Email, res.Email)

			email, err := tokenService.Parse(sessionToken)
			require.NoError(t, err)
			assert.Equal(t, account.Email, email)
		})
	}
}

func TestAuthService_LoginDoesNotRevealAccountExistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	cfg := newTestConfig()

	svc := service.New(mockRepo, cfg, mocks.NewOtel(), token.New(cfg))

	hash, err := password.Hash("pw123456")
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetByEmail(gomock.Any(), "known@b.com").
		Return(userModel.User{Email: "known@b.com", PasswordHash: hash}, nil)

	_, _, errKnown := svc.Login(context.Background(), dto.LoginRequest{Email: "known@b.com", Password: "wrong"})

	mockRepo.EXPECT().
		GetByEmail(gomock.Any(), "unknown@b.com").
		Return(userModel.User{}, nil)

	_, _, errUnknown := svc.Login(context.Background(), dto.LoginRequest{Email: "unknown@b.com", Password: "wrong"})

	require.Error(t, errKnown)
	require.Error(t, errUnknown)
	assert.Equal(t, errKnown.Error(), errUnknown.Error())
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	cfg := newTestConfig()
	tokenService := token.New(cfg)

	svc := service.New(mockRepo, cfg, mocks.NewOtel(), tokenService)

	t.Run("valid session resolves account", func(t *testing.T) {
		sessionToken, err := tokenService.Issue("a@b.com")
		require.NoError(t, err)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), "a@b.com").
			Return(userModel.User{Email: "a@b.com", UserName: "Alice"}, nil)

		user := svc.CurrentUser(context.Background(), sessionToken)
		require.NotNil(t, user)
		assert.Equal(t, "Alice", user.UserName)
	})

	t.Run("empty token degrades to nil", func(t *testing.T) {
		assert.Nil(t, svc.CurrentUser(context.Background(), ""))
	})

	t.Run("garbage token degrades to nil", func(t *testing.T) {
		assert.Nil(t, svc.CurrentUser(context.Background(), "not-a-token"))
	})

	t.Run("deleted account degrades to nil", func(t *testing.T) {
		sessionToken, err := tokenService.Issue("gone@b.com")
		require.NoError(t, err)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), "gone@b.com").
			Return(userModel.User{}, nil)

		assert.Nil(t, svc.CurrentUser(context.Background(), sessionToken))
	})

	t.Run("repository error degrades to nil", func(t *testing.T) {
		sessionToken, err := tokenService.Issue("a@b.com")
		require.NoError(t, err)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), "a@b.com").
			Return(userModel.User{}, errors.New("database error"))

		assert.Nil(t, svc.CurrentUser(context.Background(), sessionToken))
	})
}
