package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"shop-backend/internal/assets"
	"shop-backend/internal/config"
	"shop-backend/internal/db"
	"shop-backend/internal/events"
	"shop-backend/internal/httpserver"
	"shop-backend/internal/logging"
	"shop-backend/internal/repo"
	"shop-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// The auth gate cannot run without a signing secret; refusing to start
	// beats issuing unverifiable tokens.
	config.MustNonEmpty(cfg.JWT_SECRET, "JWT_SECRET")
	config.MustNonEmpty(cfg.DB_HOST, "DB_HOST")
	config.MustNonEmpty(cfg.DB_USER, "DB_USER")
	config.MustNonEmpty(cfg.DB_NAME, "DB_NAME")

	logger := logging.New(cfg.LOG_LEVEL)

	database, err := db.Open(context.Background(), cfg.DSN())
	if err != nil {
		log.Fatalf("initializing db: %v", err)
	}

	store, err := assets.NewStore(cfg.UPLOAD_DIR)
	if err != nil {
		log.Fatalf("initializing asset store: %v", err)
	}

	producer := events.NewProducer(cfg.KAFKA_ADDRESS)
	defer producer.Close()

	r := repo.New(database)
	secret := []byte(cfg.JWT_SECRET)

	deps := &httpserver.Deps{
		Logger:    logger,
		JWTSecret: secret,
		Origin:    cfg.FrontendOrigin(),
		Auth: &httpserver.AuthHTTP{
			Svc: &service.AuthService{Repo: r, JWTSecret: secret, Producer: producer},
		},
		Category: &httpserver.CategoryHTTP{
			Svc: &service.CategoryService{Repo: r, Producer: producer},
		},
		Product: &httpserver.ProductHTTP{
			Svc: &service.ProductService{Repo: r, Producer: producer},
		},
		Image: &httpserver.ImageHTTP{Store: store},
	}

	e := echo.New()
	e.HideBanner = true
	httpserver.Register(e, deps)

	e.Logger.Fatal(e.Start(":" + cfg.PORT))
}
