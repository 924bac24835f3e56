package handler

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"tutorials/config"
	"tutorials/di"
	"tutorials/shared/logger"
	"tutorials/shared/timezone"
	"tutorials/transport/http/response"
)

var (
	once    sync.Once
	handler http.Handler
)

func setup() {
	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	server, _, err := di.InitializeService()
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize service")

		return
	}

	handler = server.Handler()
}

// Handler is the serverless entrypoint. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(setup)

	if handler == nil {
		response.WithUnhealthy(w)

		return
	}

	handler.ServeHTTP(w, r)
}
