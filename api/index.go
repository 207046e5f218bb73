package handler

import (
	"net/http"

	"travelog/config"
	"travelog/di"
	"travelog/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService().Adaptor()
	handler.ServeHTTP(w, r)
}
