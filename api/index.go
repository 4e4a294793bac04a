package handler

import (
	"net/http"
	"sync"

	"salonbooking/config"
	"salonbooking/di"
	"salonbooking/shared/logger"
	"salonbooking/shared/timezone"
	transport "salonbooking/transport/http"
)

var (
	once    sync.Once
	service *transport.HTTP
)

// Handler is the serverless entrypoint. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Init(cfg)

		_ = timezone.Init(cfg.App.Timezone)

		service = di.InitializeService()
	})

	service.Handler().ServeHTTP(w, r)
}
