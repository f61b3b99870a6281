package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"frs_backend/internal/app/di"
	"frs_backend/internal/app/router"
	adminhandler "frs_backend/internal/feature/admin/transport/handler"
	adminusecase "frs_backend/internal/feature/admin/usecase"
	frsmodeladapters "frs_backend/internal/feature/frsmodels/adapters"
	frsmodelhandler "frs_backend/internal/feature/frsmodels/transport/handler"
	frsmodelusecase "frs_backend/internal/feature/frsmodels/usecase"
	reportadapters "frs_backend/internal/feature/reports/adapters"
	reporthandler "frs_backend/internal/feature/reports/transport/handler"
	reportusecase "frs_backend/internal/feature/reports/usecase"
	usersadapters "frs_backend/internal/feature/users/adapters"
	userhandler "frs_backend/internal/feature/users/transport/handler"
	userusecase "frs_backend/internal/feature/users/usecase"
	"frs_backend/internal/platform/cache"
	infradb "frs_backend/internal/platform/db"
	jwtmw "frs_backend/internal/platform/jwt"
	infraredis "frs_backend/internal/platform/redis"
	"frs_backend/internal/platform/storage"
)

const (
	tokenTTL   = 24 * time.Hour
	sessionTTL = 7 * 24 * time.Hour
	reportTTL  = 15 * time.Minute
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions fall back to the database; report cache disabled.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Artifact storage
	artifacts, err := storage.NewLocalStore(storage.LoadConfig())
	if err != nil {
		log.Fatalf("failed to initialize artifact store: %v", err)
	}

	// JWT secret check
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := usersadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	modelRepo := frsmodeladapters.NewFRSModelGorm(db)
	reportRepo := reportadapters.NewReportGorm(db)

	// Reports are immutable, so reads go through a Redis cache
	cachedReportRepo := cache.NewCachingReportRepository(rdb, reportTTL, reportRepo, "reports")

	// Usecase
	tokens := jwtmw.NewGenerator(secret, tokenTTL)
	userUC := userusecase.NewUserUsecase(userRepo, sessionRepo, tokens, sessionTTL)
	modelUC := frsmodelusecase.NewFRSModelUsecase(modelRepo, artifacts)
	reportUC := reportusecase.NewReportUsecase(cachedReportRepo, modelRepo)
	adminUC := adminusecase.NewAdminUsecase(userRepo, modelRepo, reportRepo)

	// Handler
	authH := userhandler.NewAuthHandler(userUC)
	accountH := userhandler.NewAccountHandler(userUC)
	modelH := frsmodelhandler.NewModelHandler(modelUC)
	reportH := reporthandler.NewReportHandler(reportUC)
	adminH := adminhandler.NewAdminHandler(adminUC)

	// Router
	r := router.NewRouter(authH, accountH, modelH, reportH, adminH, jwtmw.AuthRequired(userUC))

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
