package closure

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/maestroya/backend/app/repository"
	"github.com/maestroya/backend/internal/pkg/cache"
	"github.com/maestroya/backend/internal/pkg/database"
	"github.com/maestroya/backend/internal/pkg/env"
	"github.com/maestroya/backend/internal/pkg/push"
)

const (
	defaultIntervalMS = 300000
	minIntervalMS     = 60000
	defaultOffsetMin  = 60

	// First run is delayed a bit so the process finishes booting first.
	startupDelay = 30 * time.Second

	// resolutionGrace is how long after the service end an activated closure
	// waits for actor signals before auto-resolving. Deliberately independent
	// of the activation offset so the two windows stay separately tunable.
	resolutionGrace = 25 * time.Hour
)

// LastRunCacheKey holds the JSON RunSummary of the most recent tick.
const LastRunCacheKey = "closure:last_run"

// Config carries the timing knobs for the closure cron.
type Config struct {
	// ActivateOffset is how long after the service end an appointment becomes
	// eligible for pending_close.
	ActivateOffset time.Duration
	// Interval between cron ticks.
	Interval time.Duration
}

// ConfigFromEnv reads CLOSURE_ACTIVATE_OFFSET_MIN and CLOSURE_CRON_INTERVAL_MS,
// clamping the interval to a one minute floor.
func ConfigFromEnv() Config {
	offsetMin := defaultOffsetMin
	if v, err := strconv.Atoi(env.GetEnv("CLOSURE_ACTIVATE_OFFSET_MIN", "")); err == nil {
		offsetMin = v
	}

	intervalMS := defaultIntervalMS
	if v, err := strconv.Atoi(env.GetEnv("CLOSURE_CRON_INTERVAL_MS", "")); err == nil {
		intervalMS = v
	}
	if intervalMS < minIntervalMS {
		intervalMS = minIntervalMS
	}

	return Config{
		ActivateOffset: time.Duration(offsetMin) * time.Minute,
		Interval:       time.Duration(intervalMS) * time.Millisecond,
	}
}

// RunSummary describes one completed cron tick.
type RunSummary struct {
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
	Activated  int       `json:"activated"`
	Resolved   int       `json:"resolved"`
	Settled    int       `json:"settled"`
}

// Manager runs the closure reconciliation loop: an activation pass that flags
// elapsed cash appointments as pending_close, then a resolution pass that
// settles the ones whose window expired. Both passes work row by row with no
// shared state, so overlapping instances only race at the guarded UPDATEs.
type Manager struct {
	db    *gorm.DB
	repos *repository.Repositories
	push  push.Service
	cfg   Config

	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global closure manager (singleton)
func GetManager() *Manager {
	managerOnce.Do(func() {
		db := database.GetDB()
		globalManager = NewManager(db, push.FromEnv(db), ConfigFromEnv())
	})
	return globalManager
}

// NewManager creates a closure manager on an explicit database handle and
// push service.
func NewManager(db *gorm.DB, pushSvc push.Service, cfg Config) *Manager {
	return &Manager{
		db:    db,
		repos: repository.NewRepositories(db),
		push:  pushSvc,
		cfg:   cfg,
	}
}

// Start launches the cron loop. Safe to call twice.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	m.stopCh = make(chan struct{})
	m.running = true
	log.Infof("[Closure] Starting cron (interval: %s, activation offset: %s)", m.cfg.Interval, m.cfg.ActivateOffset)

	m.wg.Add(1)
	go m.loop()
}

// Stop halts the cron loop and waits for an in-flight tick to finish.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[Closure] Stopping cron...")
	close(m.stopCh)
	m.running = false
	m.wg.Wait()
	log.Info("[Closure] Stopped")
}

// IsRunning returns whether the manager is currently running
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Manager) loop() {
	defer m.wg.Done()

	first := time.NewTimer(startupDelay)
	defer first.Stop()
	select {
	case <-m.stopCh:
		return
	case <-first.C:
	}
	m.runTick()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.runTick()
		}
	}
}

func (m *Manager) runTick() {
	summary := m.RunOnce()
	storeSummary(summary)
}

// RunOnce executes one full tick: settings load, activation pass, then
// resolution pass. Activation completes before resolution starts, so a row
// activated in this tick is never resolved in the same tick (its due
// timestamp is still in the future).
func (m *Manager) RunOnce() RunSummary {
	started := time.Now()
	settings := LoadCashSettings(m.db)

	activated := m.runActivation(time.Now())
	resolved, settled := m.runResolution(time.Now(), settings)

	summary := RunSummary{
		StartedAt:  started,
		DurationMS: time.Since(started).Milliseconds(),
		Activated:  activated,
		Resolved:   resolved,
		Settled:    settled,
	}
	log.Infof("[Closure] Tick done in %dms: activated=%d resolved=%d settled=%d",
		summary.DurationMS, summary.Activated, summary.Resolved, summary.Settled)
	return summary
}

// storeSummary caches the last run for the ops status endpoint. Best-effort:
// a cache outage only costs observability.
func storeSummary(summary RunSummary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := cache.Set(LastRunCacheKey, payload, 24*time.Hour); err != nil {
		log.Warnf("[Closure] could not cache run summary: %v", err)
	}
}
