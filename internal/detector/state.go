package detector

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Status classifies a single processed frame.
type Status string

const (
	StatusAwake       Status = "AWAKE"
	StatusDrowsy      Status = "DROWSY"
	StatusNoFace      Status = "NO_FACE"
	StatusMetricError Status = "METRIC_ERROR"
)

var ErrConfigOutOfRange = errors.New("detector: config value out of range")

// Config holds the runtime-tunable detection parameters.
// WindowSize is accepted and stored for a future smoothing pass but is
// not consulted by the current algorithm.
type Config struct {
	EARThreshold      float64 `json:"ear_threshold"`
	ConsecutiveFrames int     `json:"consecutive_frames"`
	WindowSize        int     `json:"window_size"`
}

// DefaultConfig mirrors the tuning the product shipped with.
func DefaultConfig() Config {
	return Config{
		EARThreshold:      0.25,
		ConsecutiveFrames: 20,
		WindowSize:        10,
	}
}

// ConfigUpdate is a partial config change; nil fields are left as-is.
type ConfigUpdate struct {
	EARThreshold      *float64 `json:"ear_threshold,omitempty"`
	ConsecutiveFrames *int     `json:"consecutive_frames,omitempty"`
	WindowSize        *int     `json:"window_size,omitempty"`
}

// FrameResult is the outcome of advancing the detector by one frame.
type FrameResult struct {
	Status         Status
	EAR            float64
	ClosedFrames   int
	TotalFrames    int64
	DrowsyFrames   int64
	AlertTriggered bool
}

// Stats is the cumulative view over every processed frame, readable
// and unreadable alike.
type Stats struct {
	TotalFrames      int64   `json:"frames_processed"`
	DrowsyFrames     int64   `json:"drowsy_frames"`
	DrowsyPercentage float64 `json:"drowsy_percentage"`
}

// Detector is the temporal drowsiness state machine. One instance per
// detection session; every method is safe for concurrent use, each
// call executing as a single serialized unit so the run-length counter
// and alert latch can never desynchronize.
type Detector struct {
	mu  sync.Mutex
	cfg Config

	closedFrames int
	alertOn      bool
	totalFrames  int64
	drowsyFrames int64
}

// New returns a Detector with the given config, or ErrConfigOutOfRange
// if the config is invalid.
func New(cfg Config) (*Detector, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg}, nil
}

func validateConfig(cfg Config) error {
	if cfg.EARThreshold <= 0 || math.IsInf(cfg.EARThreshold, 0) || math.IsNaN(cfg.EARThreshold) {
		return fmt.Errorf("%w: ear_threshold %v", ErrConfigOutOfRange, cfg.EARThreshold)
	}
	if cfg.ConsecutiveFrames <= 0 {
		return fmt.Errorf("%w: consecutive_frames %d", ErrConfigOutOfRange, cfg.ConsecutiveFrames)
	}
	if cfg.WindowSize <= 0 {
		return fmt.Errorf("%w: window_size %d", ErrConfigOutOfRange, cfg.WindowSize)
	}
	return nil
}

// Tick advances the state machine by one frame carrying a valid eye
// aspect ratio. AlertTriggered is true only on the frame where the
// alert latch flips from off to on, so a notification hook fires once
// per closed-eye run, not once per drowsy frame.
func (d *Detector) Tick(ear float64) FrameResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.totalFrames++

	triggered := false
	if ear < d.cfg.EARThreshold {
		d.closedFrames++
		if d.closedFrames >= d.cfg.ConsecutiveFrames {
			d.drowsyFrames++
			if !d.alertOn {
				d.alertOn = true
				triggered = true
			}
		}
	} else {
		// A single open-eye frame cancels the run and the alert.
		d.closedFrames = 0
		d.alertOn = false
	}

	status := StatusAwake
	if d.alertOn {
		status = StatusDrowsy
	}

	return FrameResult{
		Status:         status,
		EAR:            ear,
		ClosedFrames:   d.closedFrames,
		TotalFrames:    d.totalFrames,
		DrowsyFrames:   d.drowsyFrames,
		AlertTriggered: triggered,
	}
}

// TickUnreadable advances the frame counter for a frame with no usable
// metric (no face found, or degenerate landmarks). The run length and
// alert latch carry over untouched so a brief tracking loss does not
// cancel an in-progress closed-eye run.
func (d *Detector) TickUnreadable(status Status) FrameResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.totalFrames++

	return FrameResult{
		Status:       status,
		ClosedFrames: d.closedFrames,
		TotalFrames:  d.totalFrames,
		DrowsyFrames: d.drowsyFrames,
	}
}

// UpdateConfig applies a partial config change. All present fields are
// validated before any of them is applied; on error the prior config
// stays in effect. The change takes effect from the next tick.
func (d *Detector) UpdateConfig(u ConfigUpdate) (Config, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.cfg
	if u.EARThreshold != nil {
		next.EARThreshold = *u.EARThreshold
	}
	if u.ConsecutiveFrames != nil {
		next.ConsecutiveFrames = *u.ConsecutiveFrames
	}
	if u.WindowSize != nil {
		next.WindowSize = *u.WindowSize
	}
	if err := validateConfig(next); err != nil {
		return d.cfg, err
	}

	d.cfg = next
	return d.cfg, nil
}

// Config returns the current configuration.
func (d *Detector) Config() Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg
}

// Stats reports the cumulative counters. The percentage is rounded to
// two decimal places and defined as 0 when no frames were processed.
func (d *Detector) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	var pct float64
	if d.totalFrames > 0 {
		pct = float64(d.drowsyFrames) / float64(d.totalFrames) * 100
		pct = math.Round(pct*100) / 100
	}

	return Stats{
		TotalFrames:      d.totalFrames,
		DrowsyFrames:     d.drowsyFrames,
		DrowsyPercentage: pct,
	}
}

// Reset zeroes the counters and clears the alert latch. Configuration
// is left untouched.
func (d *Detector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closedFrames = 0
	d.alertOn = false
	d.totalFrames = 0
	d.drowsyFrames = 0
}
