package config_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sami21234/lostfound-backend/config"
)

func TestNewDefaults(t *testing.T) {
	os.Unsetenv("MATCH_WEAK_THRESHOLD")
	os.Unsetenv("MATCH_STRONG_THRESHOLD")
	os.Unsetenv("REPORT_TTL_DAYS")

	c := config.New()

	assert.Equal(t, 60, c.MatchWeakThreshold)
	assert.Equal(t, 80, c.MatchStrongThreshold)
	assert.Equal(t, 90, c.ReportTTLDays)
	assert.Equal(t, "no-reply@lostfound.app", c.MailFrom)
}

func TestNewThresholdOverrides(t *testing.T) {
	os.Setenv("MATCH_WEAK_THRESHOLD", "70")
	os.Setenv("MATCH_STRONG_THRESHOLD", "85")
	defer os.Unsetenv("MATCH_WEAK_THRESHOLD")
	defer os.Unsetenv("MATCH_STRONG_THRESHOLD")

	c := config.New()

	assert.Equal(t, 70, c.MatchWeakThreshold)
	assert.Equal(t, 85, c.MatchStrongThreshold)
}

func TestNewBadIntegerFallsBack(t *testing.T) {
	os.Setenv("REPORT_TTL_DAYS", "ninety")
	defer os.Unsetenv("REPORT_TTL_DAYS")

	c := config.New()

	assert.Equal(t, 90, c.ReportTTLDays)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	config.ErrorStatus("failed to do the thing", 500, rr, errors.New("boom"))

	assert.Equal(t, 500, rr.Code)
	assert.JSONEq(t, `{"response": {"message": "failed to do the thing", "error": "boom"}}`, rr.Body.String())
}
