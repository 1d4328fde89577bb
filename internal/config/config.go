package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Postgres PostgresConfig
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	SessionTTL string
	BcryptCost string
}

type CORSConfig struct {
	AllowedOrigins   string
	AllowCredentials string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "3000"),
		},
		Auth: AuthConfig{
			SessionTTL: getenv("SESSION_TTL", "168h"),
			BcryptCost: getenv("BCRYPT_COST", "10"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   os.Getenv("CORS_ALLOWED_ORIGINS"),
			AllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "true"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
