package config

import (
	"fmt"
	"os"
	"strings"
)

type SeedUser struct {
	Username string
	Password string
	Name     string
}

type Config struct {
	Environment string
	ServerPort  string

	// DBUrl selects the dialect: a postgres URL, or a sqlite file path
	// (anything without a scheme). Empty means in-memory sqlite.
	DBUrl     string
	JWTSecret string

	SalonName    string
	SMSAPIKey    string
	SMSAPIURL    string
	ReminderCron string

	LogLevel  string
	LogFormat string

	// Employees created on first start when the users table is empty.
	// Format: user:pass:Display Name;user2:pass2:Name2
	SeedUsers []SeedUser
}

func Load() *Config {
	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("SERVER_PORT", "3000"),

		DBUrl:     getEnv("DATABASE_URL", "salon.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),

		SalonName:    getEnv("SALON_NAME", "Salon Helios"),
		SMSAPIKey:    getEnv("SMS_API_KEY", "test_key"),
		SMSAPIURL:    getEnv("SMS_API_URL", "https://api.smsagent.rs/v1/sms/bulk"),
		ReminderCron: getEnv("REMINDER_CRON", "0 18 * * *"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		SeedUsers: parseSeedUsers(getEnv("SEED_USERS", "")),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) DevMode() bool {
	return c.Environment != "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseSeedUsers(raw string) []SeedUser {
	var users []SeedUser
	for _, entry := range strings.Split(raw, ";") {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 {
			continue
		}
		users = append(users, SeedUser{
			Username: strings.TrimSpace(parts[0]),
			Password: parts[1],
			Name:     strings.TrimSpace(parts[2]),
		})
	}
	return users
}
