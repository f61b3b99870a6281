// Package db opens the relational store and runs migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	frsentity "frs_backend/internal/feature/frsmodels/domain/entity"
	reportentity "frs_backend/internal/feature/reports/domain/entity"
	usersadapters "frs_backend/internal/feature/users/adapters"
	userentity "frs_backend/internal/feature/users/domain/entity"
)

// OpenDB connects to PostgreSQL using the DB_* environment variables,
// retrying for up to a minute so the server can start before the database
// is ready. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of the driver.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		database *gorm.DB
		err      error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		database, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(database); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return database
}

// Migrate creates or updates the tables for all persisted entities.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&userentity.User{},
		&usersadapters.SessionModel{},
		&frsentity.FRSModel{},
		&reportentity.Report{},
	)
}
