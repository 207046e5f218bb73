package token

import (
	"errors"
	"fmt"
	"time"

	"travelog/config"
	"travelog/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token has expired")
)

// devSecret signs sessions when no secret is configured. Demo-mode
// convenience only; production deployments must set SESSION_SECRET.
const devSecret = "travelog-dev-session-secret"

const hoursPerDay = 24

// Claims is the payload of the signed session token carried by the session
// cookie. The subject is the user's email address.
type Claims struct {
	jwt.RegisteredClaims
}

// Token signs and verifies the session tokens stored in the user_email
// cookie. The raw email address used to travel in that cookie unsigned; it
// is now wrapped in an HMAC-signed token so the cookie cannot be forged by
// writing an arbitrary email into it.
type Token interface {
	Issue(email string) (string, error)
	Parse(tokenString string) (string, error)
	MaxAge() time.Duration
}

type Service struct {
	config *config.Config
	secret []byte
}

func New(cfg *config.Config) Token {
	secret := cfg.Session.Secret
	if secret == "" {
		log.Warn().Msg("SESSION_SECRET not set, using built-in development secret")

		secret = devSecret
	}

	return &Service{
		config: cfg,
		secret: []byte(secret),
	}
}

// Issue creates a signed session token for the given email.
func (s *Service) Issue(email string) (string, error) {
	now := timezone.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.MaxAge())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   email,
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Parse validates a session token and returns the email it was issued for.
func (s *Service) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}

		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// MaxAge is the session lifetime, also used for the cookie expiry.
func (s *Service) MaxAge() time.Duration {
	days := s.config.Session.MaxAgeDays
	if days <= 0 {
		days = 7
	}

	return time.Duration(days) * hoursPerDay * time.Hour
}
