package main

import (
	"context"       // context package is needed for the Redis ping
	"html/template" // Template parsing for the embedded pages
	"log"           // log package is needed for logging

	"kassa/internal/api"        // Custom package for HTTP handlers
	"kassa/internal/config"     // Custom package for configuration
	"kassa/internal/middleware" // Custom package for middleware
	"kassa/internal/report"     // Period resolver and PDF renderer
	"kassa/internal/session"    // Session authority
	"kassa/internal/store"      // Credential and ledger stores
	"kassa/web"                 // Embedded HTML templates

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client, backing store for live sessions
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Load the embedded HTML templates
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html")))

	// Construct the services with explicit dependencies
	users := store.NewUserStore(db)                                               // Credential store
	transactions := store.NewTransactionStore(db)                                 // Ledger store
	sessions := session.NewManager(redisClient, cfg.SessionSecret, cfg.SessionTTL) // Session authority
	renderer := report.NewRenderer()                                              // PDF renderer

	// Auth routes
	r.GET("/register", api.RegisterPageHandler())       // Registration form
	r.POST("/register", api.RegisterHandler(users))     // Registration endpoint
	r.GET("/login", api.LoginPageHandler())             // Login form
	r.POST("/login", api.LoginHandler(users, sessions)) // Login endpoint

	// Ledger routes (protected by the session cookie)
	authed := r.Group("/")
	authed.Use(middleware.RequireSession(sessions))
	authed.GET("", api.DashboardHandler(transactions))                    // Dashboard with filters and balance
	authed.GET("/logout", api.LogoutHandler(sessions))                    // Logout endpoint
	authed.POST("/add_transaction", api.AddTransactionHandler(transactions)) // Add transaction endpoint
	authed.GET("/report", api.ReportHandler(transactions, renderer))      // PDF report download

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
