package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	Env      string
	LogLevel string

	JWTSecret string
	JWTTTL    time.Duration
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":"+getenv("PORT", "3000")),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		Env:                  strings.ToLower(getenv("APP_ENV", getenv("NODE_ENV", EnvProduction))),
		LogLevel:             strings.ToLower(getenv("LOG_LEVEL", "info")),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	var missing []string
	if cfg.DatabaseURL = getenv("DATABASE_URL", ""); cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret = getenv("JWT_SECRET", ""); cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing env: %s", strings.Join(missing, ", "))
	}

	ttl, err := ParseTTL(getenv("JWT_EXPIRES_IN", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

var ErrInvalidTTL = errors.New("invalid token ttl")

// maxTTLSeconds is the largest whole-second count a time.Duration holds.
const maxTTLSeconds = int64(math.MaxInt64 / int64(time.Second))

// ParseTTL accepts Go durations ("90m", "1h"), whole days ("7d") and bare
// seconds ("3600").
func ParseTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidTTL
	}

	var d time.Duration
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 || n > maxTTLSeconds {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTTL, s)
		}
		d = time.Duration(n) * time.Second
	} else if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseInt(days, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, s)
		}
		if n <= 0 || n > maxTTLSeconds/(24*60*60) {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTTL, s)
		}
		d = time.Duration(n) * 24 * time.Hour
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, s)
		}
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidTTL, s)
	}
	return d, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
