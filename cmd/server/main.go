package main

import (
	"context"
	"log"

	"github.com/xurshid686/student-track/internal/server"
	"github.com/xurshid686/student-track/internal/server/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app := server.NewApp(cfg)

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
