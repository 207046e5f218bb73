package service

import (
	"context"
	"fmt"

	"travelog/config"
	"travelog/infras/otel"
	"travelog/infras/token"
	"travelog/internal/domains/auth/model/dto"
	userRepo "travelog/internal/domains/user/repository"
	"travelog/shared/constant"
	"travelog/shared/failure"
	"travelog/shared/password"

	"github.com/rs/zerolog/log"
)

// Login failures deliberately reuse one message so the response does not
// reveal whether the account exists.
const msgInvalidCredentials = "Credenciales incorrectas"

const msgEmailTaken = "El correo electrónico ya está registrado"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.UserResponse, string, error)
	CurrentUser(ctx context.Context, sessionToken string) *dto.UserResponse
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
	token    token.Token
}

func New(userRepo userRepo.User, cfg *config.Config, otl otel.Otel, tok token.Token) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otl,
		token:    tok,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.userRepo.Exist(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exist {
		return res, failure.Conflict(msgEmailTaken) // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashed)
	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("email", user.Email).Msg("user registered")

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.UserResponse, sessionToken string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Email == "" {
		return res, "", failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.PasswordHash); err != nil {
		return res, "", failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	sessionToken, err = s.token.Issue(user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")

		return res, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	log.Info().Str("email", user.Email).Msg("user logged in")

	res.FromModel(user)

	return res, sessionToken, nil
}

// CurrentUser resolves the session token to its account. Any failure along
// the way degrades to nil so callers can treat a broken or stale session the
// same as no session.
func (s *serviceImpl) CurrentUser(ctx context.Context, sessionToken string) *dto.UserResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentUser")
	defer scope.End()

	if sessionToken == "" {
		return nil
	}

	email, err := s.token.Parse(sessionToken)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")

		return nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || user.Email == "" {
		return nil
	}

	var res dto.UserResponse
	res.FromModel(user)

	return &res
}
