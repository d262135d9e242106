// Package metrics provides run metrics collection and reporting for batch
// phonemization.
package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StageMetrics holds metrics for a single processing stage.
type StageMetrics struct {
	Name       string             `json:"name"`
	StartTime  time.Time          `json:"start_time"`
	EndTime    time.Time          `json:"end_time"`
	DurationMs int64              `json:"duration_ms"`
	Counters   map[string]int64   `json:"counters,omitempty"`
	Gauges     map[string]float64 `json:"gauges,omitempty"`
}

// RunMetrics holds all metrics for a complete run.
type RunMetrics struct {
	RunID       string                   `json:"run_id"`
	Timestamp   time.Time                `json:"timestamp"`
	Config      map[string]interface{}   `json:"config"`
	Stages      map[string]*StageMetrics `json:"stages"`
	Totals      *TotalMetrics            `json:"totals"`
	Environment *EnvironmentInfo         `json:"environment"`
}

// TotalMetrics holds aggregate metrics.
type TotalMetrics struct {
	DurationMs int64   `json:"duration_ms"`
	PeakMemory float64 `json:"peak_memory_mb"`
	Utterances int64   `json:"utterances"`
	Failed     int64   `json:"failed"`
	Files      int     `json:"files_written"`
	Throughput float64 `json:"throughput_utterances_per_sec"`
}

// EnvironmentInfo holds system environment details.
type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
	NumCPU    int    `json:"num_cpu"`
	MaxProcs  int    `json:"max_procs"`
}

// Collector collects metrics during execution. It is safe for concurrent
// use.
type Collector struct {
	mu          sync.Mutex
	runID       string
	startTime   time.Time
	config      map[string]interface{}
	stages      map[string]*StageMetrics
	activeStage string
	peakMemory  uint64
}

// NewCollector creates a new metrics collector with a random run id.
func NewCollector() *Collector {
	return &Collector{
		runID:     uuid.NewString(),
		startTime: time.Now(),
		config:    make(map[string]interface{}),
		stages:    make(map[string]*StageMetrics),
	}
}

// SetConfig stores configuration for the run.
func (c *Collector) SetConfig(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config[key] = value
}

// StartStage begins timing a new processing stage.
func (c *Collector) StartStage(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activeStage = name
	c.stages[name] = &StageMetrics{
		Name:      name,
		StartTime: time.Now(),
		Counters:  make(map[string]int64),
		Gauges:    make(map[string]float64),
	}
	c.updatePeakMemory()
}

// EndStage completes timing for the named stage.
func (c *Collector) EndStage(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stage, ok := c.stages[name]; ok {
		stage.EndTime = time.Now()
		stage.DurationMs = stage.EndTime.Sub(stage.StartTime).Milliseconds()
	}
	if c.activeStage == name {
		c.activeStage = ""
	}
	c.updatePeakMemory()
}

// IncrementCounter increments a counter for the active stage.
func (c *Collector) IncrementCounter(name string, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stage, ok := c.stages[c.activeStage]; ok {
		stage.Counters[name] += delta
	}
}

// SetGauge sets a gauge value for the active stage.
func (c *Collector) SetGauge(name string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stage, ok := c.stages[c.activeStage]; ok {
		stage.Gauges[name] = value
	}
}

// SetStageCounter sets a counter for a specific stage.
func (c *Collector) SetStageCounter(stage, name string, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.stages[stage]; ok {
		s.Counters[name] = value
	}
}

// updatePeakMemory tracks the maximum memory usage. Callers hold mu.
func (c *Collector) updatePeakMemory() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.Alloc > c.peakMemory {
		c.peakMemory = m.Alloc
	}
}

// Finalize creates the final RunMetrics report.
func (c *Collector) Finalize(utterances, failed int64, files int) *RunMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.updatePeakMemory()
	totalDuration := time.Since(c.startTime)

	throughput := float64(0)
	if totalDuration.Seconds() > 0 {
		throughput = float64(utterances) / totalDuration.Seconds()
	}

	return &RunMetrics{
		RunID:     c.runID,
		Timestamp: c.startTime,
		Config:    c.config,
		Stages:    c.stages,
		Totals: &TotalMetrics{
			DurationMs: totalDuration.Milliseconds(),
			PeakMemory: float64(c.peakMemory) / 1024 / 1024,
			Utterances: utterances,
			Failed:     failed,
			Files:      files,
			Throughput: throughput,
		},
		Environment: &EnvironmentInfo{
			GoVersion: runtime.Version(),
			GOOS:      runtime.GOOS,
			GOARCH:    runtime.GOARCH,
			NumCPU:    runtime.NumCPU(),
			MaxProcs:  runtime.GOMAXPROCS(0),
		},
	}
}

// RunID returns the run identifier.
func (c *Collector) RunID() string {
	return c.runID
}

// StageDuration returns the duration of a completed stage.
func (c *Collector) StageDuration(name string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stage, ok := c.stages[name]; ok && !stage.EndTime.IsZero() {
		return stage.EndTime.Sub(stage.StartTime)
	}
	return 0
}
