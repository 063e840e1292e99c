package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"

	pkgconfig "github.com/castleclothing/storefront/pkg/config"
	pkgdb "github.com/castleclothing/storefront/pkg/db"
)

const (
	MailSMTP     = "smtp"
	MailSendGrid = "sendgrid"
)

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type Mail struct {
	Provider       string
	Username       string
	Password       string
	Host           string
	Port           int
	Auth           string
	Encryption     string
	SkipTLSVerify  bool
	SendGridAPIKey string
	FromName       string
	From           string
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Config struct {
	Port          string
	LogLevel      string
	DB            pkgdb.Options
	AutoMigrate   bool
	Cloudinary    Cloudinary
	Mail          Mail
	Kafka         Kafka
	AdminPassword string
}

// LoadDotEnv reads .env into the process environment when the file exists.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Info("dotenv_not_loaded", "path", path, "reason", "using process environment", "error", err)
	}
}

// Load reads the configuration from the environment. DB_* names win over the
// MYSQL_* names used by older deployments.
func Load() *Config {
	user := pkgconfig.FirstEnv("", "EMAIL_USER")

	return &Config{
		Port:     pkgconfig.EnvDefault("PORT", "3000"),
		LogLevel: pkgconfig.EnvDefault("LOG_LEVEL", "info"),
		DB: pkgdb.Options{
			Driver:       strings.ToLower(pkgconfig.EnvDefault("DB_DRIVER", pkgdb.DriverMySQL)),
			Host:         pkgconfig.FirstEnv("127.0.0.1", "DB_HOST", "MYSQL_HOST"),
			Port:         pkgconfig.FirstEnv("", "DB_PORT", "MYSQL_PORT"),
			User:         pkgconfig.FirstEnv("", "DB_USER", "MYSQL_USER"),
			Password:     pkgconfig.FirstEnv("", "DB_PASSWORD", "MYSQL_PASSWORD"),
			Name:         pkgconfig.FirstEnv("", "DB_NAME", "MYSQL_DATABASE"),
			MaxOpenConns: pkgconfig.EnvIntDefault("DB_MAX_OPEN_CONNS", 10),
		},
		AutoMigrate: pkgconfig.EnvBoolDefault("DB_AUTO_MIGRATE", false),
		Cloudinary: Cloudinary{
			CloudName: pkgconfig.EnvDefault("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    pkgconfig.EnvDefault("CLOUDINARY_API_KEY", ""),
			APISecret: pkgconfig.EnvDefault("CLOUDINARY_API_SECRET", ""),
			Folder:    pkgconfig.EnvDefault("CLOUDINARY_FOLDER", "productos"),
		},
		Mail: Mail{
			Provider:       strings.ToLower(pkgconfig.EnvDefault("MAIL_PROVIDER", MailSMTP)),
			Username:       user,
			Password:       pkgconfig.EnvDefault("EMAIL_PASSWORD", ""),
			Host:           pkgconfig.EnvDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:           pkgconfig.EnvIntDefault("SMTP_PORT", 587),
			Auth:           pkgconfig.EnvDefault("SMTP_AUTH", "PLAIN"),
			Encryption:     pkgconfig.EnvDefault("SMTP_ENCRYPTION", "STARTTLS"),
			SkipTLSVerify:  pkgconfig.EnvBoolDefault("SMTP_SKIP_TLS_VERIFY", false),
			SendGridAPIKey: pkgconfig.EnvDefault("SENDGRID_API_KEY", ""),
			FromName:       pkgconfig.EnvDefault("EMAIL_FROM_NAME", "Castle Clothing"),
			From:           pkgconfig.FirstEnv(user, "EMAIL_FROM"),
		},
		Kafka: Kafka{
			Brokers: pkgconfig.CSV(pkgconfig.EnvDefault("KAFKA_BROKERS", "")),
			Topic:   pkgconfig.EnvDefault("KAFKA_TOPIC", "product_events"),
		},
		AdminPassword: pkgconfig.EnvDefault("ADMIN_PASSWORD", "admin123"),
	}
}

// Missing lists required variables that are empty. The server still starts;
// the affected endpoints fail until they are set.
func (c *Config) Missing() []string {
	pairs := []string{
		"DB_USER", c.DB.User,
		"DB_NAME", c.DB.Name,
		"CLOUDINARY_CLOUD_NAME", c.Cloudinary.CloudName,
		"CLOUDINARY_API_KEY", c.Cloudinary.APIKey,
		"CLOUDINARY_API_SECRET", c.Cloudinary.APISecret,
	}
	switch c.Mail.Provider {
	case MailSendGrid:
		pairs = append(pairs, "SENDGRID_API_KEY", c.Mail.SendGridAPIKey, "EMAIL_FROM", c.Mail.From)
	default:
		pairs = append(pairs, "EMAIL_USER", c.Mail.Username, "EMAIL_PASSWORD", c.Mail.Password)
	}
	return pkgconfig.MissingVars(pairs...)
}
