package config

import (
	"strconv"
	"strings"
	"time"
)

// Settings read once at startup. Defaults suit local development.
type Settings struct {
	Port          string
	AppEnv        string
	CORSOrigins   []string
	RateLimitMax  int
	RateLimitSpan time.Duration
}

func LoadSettings() Settings {
	rateMax, err := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "100"))
	if err != nil || rateMax < 1 {
		rateMax = 100
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return Settings{
		Port:          getEnv("PORT", "8000"),
		AppEnv:        getEnv("APP_ENV", "development"),
		CORSOrigins:   origins,
		RateLimitMax:  rateMax,
		RateLimitSpan: time.Minute,
	}
}
