package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"ikuuu-checkin/internal/model"
)

const DefaultHost = "ikuuu.one"

// ErrMissingCredentials is returned when EMAIL or PASSWD is not set.
var ErrMissingCredentials = errors.New("EMAIL or PASSWD not set")

type Runtime struct {
	Host             string
	Credentials      model.Credentials
	TelegramBotToken string
	TelegramChatID   string
	HTTPTimeout      time.Duration
}

func LoadRuntime() (Runtime, error) {
	envFile := getenvDefault("CHECKIN_ENV_FILE", ".env")
	if err := loadEnvFile(envFile); err != nil {
		return Runtime{}, err
	}
	timeoutSec := readIntEnv("CHECKIN_HTTP_TIMEOUT_SEC", 20)
	if timeoutSec < 0 {
		timeoutSec = 0
	}
	cfg := Runtime{
		Host: getenvDefault("HOST", DefaultHost),
		Credentials: model.Credentials{
			Email:    os.Getenv("EMAIL"),
			Password: os.Getenv("PASSWD"),
		},
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		HTTPTimeout:      time.Duration(timeoutSec) * time.Second,
	}
	if cfg.Credentials.Email == "" || cfg.Credentials.Password == "" {
		return Runtime{}, ErrMissingCredentials
	}
	return cfg, nil
}

// loadEnvFile never overrides variables already present in the environment.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	log.Printf("loaded environment from %s", path)
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func readIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
