package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string

	JWT_SECRET string

	PORT     string
	PROTOCOL string
	FE_PORT  string

	KAFKA_ADDRESS string
	UPLOAD_DIR    string
	LOG_LEVEL     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:       os.Getenv("DB_HOST"),
		DB_PORT:       os.Getenv("DB_PORT"),
		DB_USER:       os.Getenv("DB_USER"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_NAME:       os.Getenv("DB_NAME"),
		JWT_SECRET:    os.Getenv("JWT_SECRET"),
		PORT:          os.Getenv("PORT"),
		PROTOCOL:      os.Getenv("PROTOCOL"),
		FE_PORT:       os.Getenv("FE_PORT"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		UPLOAD_DIR:    os.Getenv("UPLOAD_DIR"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
	}

	if config.PORT == "" {
		config.PORT = "8080"
	}
	if config.UPLOAD_DIR == "" {
		config.UPLOAD_DIR = "uploads"
	}

	return config, nil
}

// FrontendOrigin builds the origin the SPA is served from.
func (c *Config) FrontendOrigin() string {
	return fmt.Sprintf("%s://%s:%s", c.PROTOCOL, c.DB_HOST, c.FE_PORT)
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}
