package main

import (
	"context"
	"log"

	"predator-web/internal/config"
	"predator-web/internal/repository/implementation"
	"predator-web/internal/service"
	"predator-web/pkg/database"
)

func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Seeding framework catalog...")

	count, err := service.SeedCatalog(context.Background(), implementation.NewCatalogRepository(db))
	if err != nil {
		log.Fatal("Error: ", err)
	}

	log.Printf("Catalog seeding completed! %d frameworks written. Set CATALOG_SOURCE=database to serve them.", count)
}
