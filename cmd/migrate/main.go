package main

import (
	"kassa/internal/config" // Custom import path (Config)
	"kassa/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run the schema migration
}
