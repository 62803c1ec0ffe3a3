package main

import (
	"log"

	"responsivas/internal/app/server"
	"responsivas/internal/app/server/config"
	"responsivas/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	slogger := logger.New(cfg.Env)

	app, err := server.New(cfg, slogger)
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
