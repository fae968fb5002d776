package modules

import (
	"log"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SSLMode    string

	JWTSecret  string
	CORSOrigin string

	RequestTimeout time.Duration
}

func InitEnv() {
	err := godotenv.Load("server/.env")
	if err != nil {
		log.Println("⚠️  .env файл не найден")
	}
}

// LoadConfig читает конфигурацию из окружения.
// В production все секреты и адреса обязательны: отсутствующие ключи
// собираются в одну ошибку, сервер не стартует с дефолтами.
// В development дефолты допустимы, но о каждом пишем в лог.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:            envOr("APP_ENV", "development"),
		Port:           envOr("PORT", "4000"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		SSLMode:        envOr("SSL_MODE", "disable"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		CORSOrigin:     os.Getenv("CORS_ORIGIN"),
		RequestTimeout: durationOr("REQUEST_TIMEOUT", 10*time.Second),
	}

	if cfg.Env == "production" {
		var result *multierror.Error
		for _, required := range []struct{ key, val string }{
			{"JWT_SECRET", cfg.JWTSecret},
			{"DB_HOST", cfg.DBHost},
			{"DB_USER", cfg.DBUser},
			{"DB_PASSWORD", cfg.DBPassword},
			{"DB_NAME", cfg.DBName},
			{"CORS_ORIGIN", cfg.CORSOrigin},
		} {
			if required.val == "" {
				result = multierror.Append(result, missingKeyError(required.key))
			}
		}
		if err := result.ErrorOrNil(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Development-фоллбеки
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
		log.Println("⚠️  DB_HOST не задан, использую localhost")
	}
	if cfg.DBUser == "" {
		cfg.DBUser = "postgres"
		log.Println("⚠️  DB_USER не задан, использую postgres")
	}
	if cfg.DBName == "" {
		cfg.DBName = "feedline"
		log.Println("⚠️  DB_NAME не задан, использую feedline")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev_secret_do_not_use_in_production"
		os.Setenv("JWT_SECRET", cfg.JWTSecret)
		log.Println("⚠️  JWT_SECRET не задан, использую dev-секрет")
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:5173"
		log.Println("⚠️  CORS_ORIGIN не задан, использую http://localhost:5173")
	}
	return cfg, nil
}

type missingKeyError string

func (e missingKeyError) Error() string {
	return string(e) + " is required in production"
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationOr(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️  %s: некорректная длительность %q, использую %v", key, v, def)
		return def
	}
	return d
}
