package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kmpicazo/HR201System/config"
	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/mailer"
	"github.com/kmpicazo/HR201System/routes"
	"github.com/kmpicazo/HR201System/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	database.Connect(cfg)

	store, err := storage.NewMinioStore(cfg)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}
	m := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.AlertFrom, cfg.AlertTo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg, store, m)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
