package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment
type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         []byte
	CORSOrigins       []string
	RateLimitRPS      float64
	RateLimitBurst    int
	CurrencyPrecision int32
}

var defaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"}

// Load reads configs/.env when present, then the process environment
func Load() (Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults for empty values
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port: get("PORT", "8080"),
		DatabaseURL: "postgres://" + get("DB_USER", "postgres") + ":" + get("DB_PASSWORD", "postgres") +
			"@" + get("DB_HOST", "localhost") + ":" + get("DB_PORT", "5432") +
			"/" + get("DB_NAME", "postgres") + "?sslmode=" + get("DB_SSLMODE", "disable"),
		CORSOrigins: defaultCORSOrigins,
	}

	secret := getenv("JWT_SECRET")
	if secret == "" {
		if getenv("GIN_MODE") == "release" {
			return Config{}, fmt.Errorf("JWT_SECRET is required in release mode")
		}
		secret = "default_super_secret_key" // Development fallback only
	}
	cfg.JWTSecret = []byte(secret)

	if raw := get("CORS_ORIGINS", ""); raw != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "10"), 64); err != nil || cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", getenv("RATE_LIMIT_RPS"))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "20")); err != nil || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST %q", getenv("RATE_LIMIT_BURST"))
	}
	precision, err := strconv.ParseInt(get("CURRENCY_PRECISION", "2"), 10, 32)
	if err != nil || precision < 0 || precision > 8 {
		return Config{}, fmt.Errorf("invalid CURRENCY_PRECISION %q", getenv("CURRENCY_PRECISION"))
	}
	cfg.CurrencyPrecision = int32(precision)

	return cfg, nil
}
