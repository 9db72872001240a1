package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/tablebook/reservation-api/internal/client"
	"github.com/tablebook/reservation-api/internal/config"
	"github.com/tablebook/reservation-api/internal/database"
	"github.com/tablebook/reservation-api/internal/engine"
	"github.com/tablebook/reservation-api/internal/handler"
	"github.com/tablebook/reservation-api/internal/queue"
	"github.com/tablebook/reservation-api/internal/repository"
	"github.com/tablebook/reservation-api/internal/router"
	"github.com/tablebook/reservation-api/internal/utils"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.Fatalf("could not open database: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logrus.Fatalf("could not ensure schema: %v", err)
	}

	bookings := repository.NewBookingRepo(db)
	venues := client.NewVenueClient(cfg.VenueAPIURL, cfg.DirectoryToken)
	tables := client.NewTableClient(cfg.TableAPIURL, cfg.DirectoryToken)
	eng := engine.New(venues, tables, bookings, utils.UUIDGenerator{})

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable; rate limiting and response cache disabled")
	}

	if cfg.EventsEnabled {
		go queue.StartBookingConsumer()
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterBooking(e, handler.NewBookingHandler(eng, cfg.EventsEnabled), cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	logrus.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
