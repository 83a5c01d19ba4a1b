package main

import (
	"loungepass/config"
	"loungepass/di"
	"loungepass/shared/logger"
)

// @title LoungePass API
// @version 1.0
// @description Backend for the airport lounge booking client.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
