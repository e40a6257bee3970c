package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	JWTSecret   string
	TokenTTL    time.Duration
	LoginRPS    int
	PageSize    int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		// clientFoundRows so UPDATEs report matched rows, not changed rows;
		// an update that re-submits identical values must still count.
		MySQLDSN:  env("MYSQL_DSN", "root:root@tcp(localhost:3306)/tour_ops?charset=utf8mb4,utf8&loc=UTC&clientFoundRows=true"),
		JWTSecret: env("JWT_SECRET", ""),
		TokenTTL:  time.Duration(atoi("TOKEN_TTL_HOURS", 24)) * time.Hour,
		LoginRPS:  atoi("LOGIN_RPS", 5),
		PageSize:  atoi("DEFAULT_PAGE_SIZE", 5),
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
