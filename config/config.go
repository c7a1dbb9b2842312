package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Sami21234/lostfound-backend/models"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string

	MailFrom     string
	MailFromName string

	// Matching thresholds are deliberately configurable so deployments can
	// tune them without a code change.
	MatchWeakThreshold   int
	MatchStrongThreshold int

	// ReportTTLDays controls how long reports stay active before the
	// scheduler purges them.
	ReportTTLDays int
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:                  os.Getenv("DB_URI"),
		DatabaseName:         os.Getenv("DB_NAME"),
		BaseURL:              os.Getenv("BASE_URL"),
		Port:                 os.Getenv("PORT"),
		MailFrom:             envOr("MAIL_FROM_ADDRESS", "no-reply@lostfound.app"),
		MailFromName:         envOr("MAIL_FROM_NAME", "Lost & Found"),
		MatchWeakThreshold:   envInt("MATCH_WEAK_THRESHOLD", 60),
		MatchStrongThreshold: envInt("MATCH_STRONG_THRESHOLD", 80),
		ReportTTLDays:        envInt("REPORT_TTL_DAYS", 90),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnf("invalid integer for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: err.Error()},
	})
	w.Write(b)
}
