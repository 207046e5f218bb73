package middleware

import (
	"context"
	"errors"
	"net/http"

	"travelog/config"
	"travelog/infras/otel"
	"travelog/infras/token"
	"travelog/shared/constant"
	"travelog/shared/failure"
	"travelog/transport/http/response"
)

// Auth guards routes that require a logged-in user. The session travels in
// an HttpOnly cookie carrying a signed token; a missing or invalid cookie
// yields 401 without distinguishing the two cases.
type Auth interface {
	Session(http.Handler) http.Handler
}

type authImpl struct {
	token token.Token
	otel  otel.Otel
	cfg   *config.Config
}

func NewAuthMiddleware(tok token.Token, otl otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		token: tok,
		otel:  otl,
		cfg:   cfg,
	}
}

func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")
		defer scope.End()

		cookie, err := request.Cookie(constant.CookieUserEmail)
		if err != nil || cookie.Value == "" {
			err := failure.Unauthorized("Missing session cookie")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		email, err := m.token.Parse(cookie.Value)
		if err != nil {
			message := "Invalid session"
			if errors.Is(err, token.ErrExpiredToken) {
				message = "Session has expired"
			}

			err := failure.Unauthorized(message)
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, email)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
