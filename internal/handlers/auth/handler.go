package auth

import (
	"net/http"

	"travelog/config"
	"travelog/infras/otel"
	"travelog/infras/token"
	"travelog/internal/domains/auth/model/dto"
	"travelog/internal/domains/auth/service"
	"travelog/shared/constant"
	"travelog/shared/validator"
	"travelog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	token   token.Token
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Auth, tok token.Token, cfg *config.Config, otl otel.Otel) Handler {
	return Handler{
		service: service,
		token:   tok,
		cfg:     cfg,
		otel:    otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.CurrentUser)
		routerGroup.Post("/", handler.Login)
		routerGroup.Delete("/", handler.Logout)
		routerGroup.Post("/register", handler.Register)
	})
}

// Register creates a new account.
// @Summary Register a new user
// @Description Create an account with email, display name and password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	// Registration logs the new account in right away.
	sessionToken, err := handler.token.Issue(user.Email)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.setSessionCookies(writer, sessionToken, user.Email)

	response.WithJSON(writer, http.StatusCreated, user)
}

// Login verifies credentials and starts a session.
// @Summary Log in
// @Description Verify credentials and set the session cookies.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, sessionToken, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.setSessionCookies(writer, sessionToken, user.Email)

	response.WithJSON(writer, http.StatusOK, user)
}

// Logout clears the session cookies. It succeeds whether or not a session
// was present.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/auth [delete]
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	handler.clearSessionCookies(writer)

	response.WithMessage(writer, http.StatusOK, "Logged out")
}

// CurrentUser resolves the session to its account. A missing or invalid
// session is not an error; the data field is simply null.
// @Summary Get the current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Router /v1/auth [get]
func (handler *Handler) CurrentUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentUser")
	defer scope.End()

	var sessionToken string
	if cookie, err := request.Cookie(constant.CookieUserEmail); err == nil {
		sessionToken = cookie.Value
	}

	user := handler.service.CurrentUser(ctx, sessionToken)
	if user == nil {
		response.WithJSON(writer, http.StatusOK, nil)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// setSessionCookies writes the session pair: the HttpOnly cookie carries
// the signed token, while the client-readable cookie only mirrors the email
// for display purposes and is never trusted by the server.
func (handler *Handler) setSessionCookies(writer http.ResponseWriter, sessionToken, email string) {
	maxAge := int(handler.token.MaxAge().Seconds())
	secure := handler.cfg.Server.Env == constant.ServerEnvProduction

	http.SetCookie(writer, &http.Cookie{
		Name:     constant.CookieUserEmail,
		Value:    sessionToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(writer, &http.Cookie{
		Name:     constant.CookieUserEmailClient,
		Value:    email,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearSessionCookies(writer http.ResponseWriter) {
	secure := handler.cfg.Server.Env == constant.ServerEnvProduction

	for _, name := range []string{constant.CookieUserEmail, constant.CookieUserEmailClient} {
		http.SetCookie(writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: name == constant.CookieUserEmail,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
