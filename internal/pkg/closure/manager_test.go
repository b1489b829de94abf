package closure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg := ConfigFromEnv()

	assert.Equal(t, 60*time.Minute, cfg.ActivateOffset)
	assert.Equal(t, 300*time.Second, cfg.Interval)
}

func TestConfigFromEnvOverridesAndFloor(t *testing.T) {
	t.Setenv("CLOSURE_ACTIVATE_OFFSET_MIN", "15")
	t.Setenv("CLOSURE_CRON_INTERVAL_MS", "1000")

	cfg := ConfigFromEnv()

	assert.Equal(t, 15*time.Minute, cfg.ActivateOffset)
	// Interval is clamped to the one minute floor
	assert.Equal(t, time.Minute, cfg.Interval)
}

func TestManagerStartStop(t *testing.T) {
	m := testManager(t, testDB(t))

	assert.False(t, m.IsRunning())

	m.Start()
	assert.True(t, m.IsRunning())
	// Second Start is a no-op
	m.Start()

	m.Stop()
	assert.False(t, m.IsRunning())
	// Second Stop is a no-op
	m.Stop()
}
