package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travelog/config"
	"travelog/infras/otel/mocks"
	"travelog/infras/token"
	"travelog/shared/constant"
	"travelog/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionMiddleware(t *testing.T, secret string) (middleware.Auth, token.Token) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.Secret = secret

	tok := token.New(cfg)

	return middleware.NewAuthMiddleware(tok, mocks.NewOtel(), cfg), tok
}

func TestSessionMiddleware(t *testing.T) {
	guard, tok := newSessionMiddleware(t, "middleware-test-secret")

	var seenEmail string
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenEmail, _ = request.Context().Value(constant.ContextKeyUserEmail).(string)
		writer.WriteHeader(http.StatusOK)
	})

	serve := func(cookie *http.Cookie) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/v1/albums", nil)
		if cookie != nil {
			request.AddCookie(cookie)
		}

		recorder := httptest.NewRecorder()
		guard.Session(next).ServeHTTP(recorder, request)

		return recorder
	}

	t.Run("valid session reaches the handler", func(t *testing.T) {
		signed, err := tok.Issue("ana@example.com")
		require.NoError(t, err)

		recorder := serve(&http.Cookie{Name: constant.CookieUserEmail, Value: signed})
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ana@example.com", seenEmail)
	})

	t.Run("missing cookie is unauthorized", func(t *testing.T) {
		recorder := serve(nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Missing session cookie")
	})

	t.Run("tampered token is unauthorized", func(t *testing.T) {
		recorder := serve(&http.Cookie{Name: constant.CookieUserEmail, Value: "forged.session.value"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid session")
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		_, foreignToken := newSessionMiddleware(t, "some-other-secret")

		signed, err := foreignToken.Issue("ana@example.com")
		require.NoError(t, err)

		recorder := serve(&http.Cookie{Name: constant.CookieUserEmail, Value: signed})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("client display cookie alone does not authenticate", func(t *testing.T) {
		recorder := serve(&http.Cookie{Name: constant.CookieUserEmailClient, Value: "ana@example.com"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
