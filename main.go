// main.go
package main

import (
	"log"
	"time"

	"health-tracker/cmd"
	"health-tracker/internal/data/repository"
	"health-tracker/internal/wire"
	"health-tracker/pkg/database"
	"health-tracker/pkg/mailer"
	"health-tracker/pkg/rabbitmq"
	"health-tracker/pkg/token"
	"health-tracker/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations
	if err := database.Migrate(database.ConnString(config.Database)); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Session token issuer
	issuer := token.NewIssuer(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	// Outbound mail worker pool
	mail := mailer.New(config.Email, logger)
	defer mail.Close()

	// Optional account event broker
	var events *rabbitmq.Client
	if config.AMQP.URL != "" {
		events, err = rabbitmq.NewClient(config.AMQP.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer events.Close()
		logger.Info("RabbitMQ connected successfully")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, issuer, mail, events, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
