package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Token    TokenConfig
	AMQP     AMQPConfig
}

type AppConfig struct {
	Name        string
	Port        string
	BaseURL     string
	Debug       bool
	LogPath     string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type EmailConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	Workers   int
	QueueSize int
}

type TokenConfig struct {
	VerificationExpiryHours int
	PinExpiryMinutes        int
}

type AMQPConfig struct {
	URL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("VERIFICATION_EXPIRY_HOURS", 24)
	viper.SetDefault("PIN_EXPIRY_MINUTES", 15)
	viper.SetDefault("MAIL_WORKERS", 10)
	viper.SetDefault("MAIL_QUEUE_SIZE", 100)
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("FRONTEND_URL", "http://localhost:4200")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			BaseURL:     viper.GetString("BASE_URL"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:      viper.GetString("SMTP_HOST"),
			Port:      viper.GetInt("SMTP_PORT"),
			User:      viper.GetString("SMTP_USER"),
			Password:  viper.GetString("SMTP_PASS"),
			From:      viper.GetString("EMAIL_FROM"),
			Workers:   viper.GetInt("MAIL_WORKERS"),
			QueueSize: viper.GetInt("MAIL_QUEUE_SIZE"),
		},
		Token: TokenConfig{
			VerificationExpiryHours: viper.GetInt("VERIFICATION_EXPIRY_HOURS"),
			PinExpiryMinutes:        viper.GetInt("PIN_EXPIRY_MINUTES"),
		},
		AMQP: AMQPConfig{
			URL: viper.GetString("AMQP_URL"),
		},
	}

	return config, nil
}
