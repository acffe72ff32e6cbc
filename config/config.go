package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config binds every platform client to one backend project. The seven
// project fields mirror the hosted-app settings record; the rest is
// deployment wiring (endpoints, credentials, SMTP).
type Config struct {
	APIKey            string
	AuthDomain        string
	ProjectID         string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
	MeasurementID     string

	Port           string
	AllowedOrigins []string

	MongoURI string
	Database string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	PublicHost     string

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUser     string
	SMTPPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		APIKey:            os.Getenv("API_KEY"),
		AuthDomain:        os.Getenv("AUTH_DOMAIN"),
		ProjectID:         os.Getenv("PROJECT_ID"),
		StorageBucket:     os.Getenv("STORAGE_BUCKET"),
		MessagingSenderID: os.Getenv("MESSAGING_SENDER_ID"),
		AppID:             os.Getenv("APP_ID"),
		MeasurementID:     os.Getenv("MEASUREMENT_ID"),

		Port: os.Getenv("PORT"),

		MongoURI: os.Getenv("MONGO_URI"),
		Database: os.Getenv("MONGO_DATABASE"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") != "false",
		PublicHost:     os.Getenv("STORAGE_PUBLIC_HOST"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is not set")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "1414"
	}
	if cfg.Database == "" {
		cfg.Database = cfg.ProjectID
	}
	if cfg.Database == "" {
		cfg.Database = "ecom"
	}
	if cfg.PublicHost == "" {
		cfg.PublicHost = cfg.StorageBucket
	}

	cfg.SMTPPort = 465
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
		}
		cfg.SMTPPort = port
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	} else {
		cfg.AllowedOrigins = []string{"https://" + cfg.AuthDomain}
	}

	return cfg, nil
}
