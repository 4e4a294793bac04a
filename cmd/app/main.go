package main

import (
	"salonbooking/config"
	"salonbooking/di"
	"salonbooking/shared/logger"
	"salonbooking/shared/timezone"
)

// @title						Salon Booking API
// @version					1.0
// @description				Booking flow for the salon website: services, staff, slots, contact and appointments.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	_ = timezone.Init(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
