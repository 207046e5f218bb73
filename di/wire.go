//go:build wireinject
// +build wireinject

package di

import (
	"travelog/config"
	"travelog/infras/memory"
	"travelog/infras/otel"
	"travelog/infras/postgres"
	"travelog/infras/redis"
	"travelog/infras/token"
	"travelog/shared/cache"
	"travelog/transport/http"
	"travelog/transport/http/middleware"
	"travelog/transport/http/router"

	albumRepository "travelog/internal/domains/album/repository"
	albumService "travelog/internal/domains/album/service"
	authService "travelog/internal/domains/auth/service"
	noteRepository "travelog/internal/domains/note/repository"
	noteService "travelog/internal/domains/note/service"
	photoRepository "travelog/internal/domains/photo/repository"
	photoService "travelog/internal/domains/photo/service"
	placeRepository "travelog/internal/domains/place/repository"
	placeService "travelog/internal/domains/place/service"
	userRepository "travelog/internal/domains/user/repository"

	albumHandler "travelog/internal/handlers/album"
	authHandler "travelog/internal/handlers/auth"
	noteHandler "travelog/internal/handlers/note"
	photoHandler "travelog/internal/handlers/photo"
	placeHandler "travelog/internal/handlers/place"
	systemHandler "travelog/internal/handlers/system"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	token.New,
	memory.NewSeeded,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var albumDomain = wire.NewSet(
	albumRepository.New,
	albumService.New,
)

var photoDomain = wire.NewSet(
	photoRepository.New,
	photoService.New,
)

var noteDomain = wire.NewSet(
	noteRepository.New,
	noteService.New,
)

var placeDomain = wire.NewSet(
	placeRepository.New,
	placeService.New,
)

var domains = wire.NewSet(
	authDomain,
	albumDomain,
	photoDomain,
	noteDomain,
	placeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	albumHandler.New,
	photoHandler.New,
	noteHandler.New,
	placeHandler.New,
	systemHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
