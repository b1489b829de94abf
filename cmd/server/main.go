package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/maestroya/backend/internal/pkg/cache"
	"github.com/maestroya/backend/internal/pkg/closure"
	"github.com/maestroya/backend/internal/pkg/database"
	"github.com/maestroya/backend/internal/pkg/env"
	"github.com/maestroya/backend/internal/pkg/router"
)

func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	manager := closure.GetManager()
	manager.Start()

	app := fiber.New()
	app.Use(recover.New(), logger.New())
	router.InstallRouter(app)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down...")
		manager.Stop()
		_ = app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "4000")))
	if err != nil {
		log.Fatal(err)
	}
}
