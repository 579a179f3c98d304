package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/dheerajvarshn/portfolio-backend/src/config"
	"github.com/dheerajvarshn/portfolio-backend/src/controllers"
	"github.com/dheerajvarshn/portfolio-backend/src/lib"
	"github.com/dheerajvarshn/portfolio-backend/src/logger"
	"github.com/dheerajvarshn/portfolio-backend/src/middleware"
	"github.com/dheerajvarshn/portfolio-backend/src/routes"
	"github.com/dheerajvarshn/portfolio-backend/src/seed"
	"github.com/dheerajvarshn/portfolio-backend/src/store"
)

func main() {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err)
	}

	log := logger.New(cfg.LogLevel)

	db, err := store.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Error("failed to close MongoDB connection", "error", err)
		}
	}()
	log.Info("connected to MongoDB", "db", cfg.MongoDB)

	if cfg.Seed.OnStart {
		if err := seed.Run(context.Background(), db, cfg.Seed, log); err != nil {
			log.Fatal("failed to seed admin user", "error", err)
		}
	}

	tokens := lib.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	protect := middleware.Protect(db, tokens)
	ownership := middleware.CheckOwnership()

	auth := &controllers.AuthController{Users: db, Tokens: tokens, Log: log}
	user := &controllers.UserController{Users: db, Log: log}
	portfolio := &controllers.PortfolioController{Users: db, Legacy: db, Log: log}
	legacy := &controllers.LegacyController{Legacy: db, Log: log}

	routes.AuthRoutes(app, auth, protect)
	routes.UserRoutes(app, user, protect)
	routes.PortfolioRoutes(app, portfolio, protect, ownership)
	routes.LegacyRoutes(app, legacy, protect)

	log.Info("server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
