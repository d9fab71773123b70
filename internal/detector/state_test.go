package detector

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(t *testing.T, threshold float64, consecutive int) *Detector {
	t.Helper()
	d, err := New(Config{
		EARThreshold:      threshold,
		ConsecutiveFrames: consecutive,
		WindowSize:        10,
	})
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("accepts the default config", func(t *testing.T) {
		t.Parallel()
		d, err := New(DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, 0.25, d.Config().EARThreshold)
		assert.Equal(t, 20, d.Config().ConsecutiveFrames)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		t.Parallel()
		for _, cfg := range []Config{
			{EARThreshold: 0, ConsecutiveFrames: 20, WindowSize: 10},
			{EARThreshold: -0.1, ConsecutiveFrames: 20, WindowSize: 10},
			{EARThreshold: math.Inf(1), ConsecutiveFrames: 20, WindowSize: 10},
			{EARThreshold: math.NaN(), ConsecutiveFrames: 20, WindowSize: 10},
			{EARThreshold: 0.25, ConsecutiveFrames: 0, WindowSize: 10},
			{EARThreshold: 0.25, ConsecutiveFrames: 20, WindowSize: -1},
		} {
			_, err := New(cfg)
			assert.ErrorIs(t, err, ErrConfigOutOfRange, "config %+v", cfg)
		}
	})
}

func TestTickHysteresis(t *testing.T) {
	t.Parallel()

	d := newTestDetector(t, 0.25, 3)

	metrics := []float64{0.30, 0.20, 0.20, 0.20, 0.30}
	wantStatus := []Status{StatusAwake, StatusAwake, StatusAwake, StatusDrowsy, StatusAwake}
	wantTriggered := []bool{false, false, false, true, false}

	for i, ear := range metrics {
		res := d.Tick(ear)
		assert.Equal(t, wantStatus[i], res.Status, "frame %d", i)
		assert.Equal(t, wantTriggered[i], res.AlertTriggered, "frame %d", i)
		assert.Equal(t, int64(i+1), res.TotalFrames, "frame %d", i)
	}

	stats := d.Stats()
	assert.Equal(t, int64(5), stats.TotalFrames)
	assert.Equal(t, int64(1), stats.DrowsyFrames)
}

func TestTickAlertFiresOncePerRun(t *testing.T) {
	t.Parallel()

	d := newTestDetector(t, 0.25, 2)

	triggers := 0
	for i := 0; i < 6; i++ {
		if d.Tick(0.10).AlertTriggered {
			triggers++
		}
	}
	assert.Equal(t, 1, triggers, "alert must fire on the latch edge only")

	// Recovery clears the latch; a new run triggers again.
	assert.Equal(t, StatusAwake, d.Tick(0.35).Status)
	d.Tick(0.10)
	assert.True(t, d.Tick(0.10).AlertTriggered)
}

func TestTickUnreadableFreezesRun(t *testing.T) {
	t.Parallel()

	d := newTestDetector(t, 0.25, 3)

	wantClosed := []int{1, 2, 2, 3}
	results := []FrameResult{
		d.Tick(0.20),
		d.Tick(0.20),
		d.TickUnreadable(StatusNoFace),
		d.Tick(0.20),
	}
	for i, res := range results {
		assert.Equal(t, wantClosed[i], res.ClosedFrames, "frame %d", i)
	}

	assert.Equal(t, StatusNoFace, results[2].Status)
	assert.Equal(t, StatusDrowsy, results[3].Status)
	assert.Equal(t, int64(4), results[3].TotalFrames)
}

func TestTickUnreadableCarriesLatch(t *testing.T) {
	t.Parallel()

	d := newTestDetector(t, 0.25, 2)
	d.Tick(0.10)
	d.Tick(0.10) // latched

	res := d.TickUnreadable(StatusMetricError)
	assert.Equal(t, StatusMetricError, res.Status)
	assert.False(t, res.AlertTriggered)

	// The latch survives the unreadable frame: no new edge on resume.
	res = d.Tick(0.10)
	assert.Equal(t, StatusDrowsy, res.Status)
	assert.False(t, res.AlertTriggered)
}

func TestReset(t *testing.T) {
	t.Parallel()

	d := newTestDetector(t, 0.25, 2)
	d.Tick(0.10)
	d.Tick(0.10)
	d.Tick(0.10)

	d.Reset()

	stats := d.Stats()
	assert.Equal(t, Stats{}, stats)

	// A run restarts from scratch after reset.
	res := d.Tick(0.10)
	assert.Equal(t, 1, res.ClosedFrames)
	assert.Equal(t, int64(1), res.TotalFrames)
	assert.Equal(t, StatusAwake, res.Status)

	// Config is untouched by reset.
	assert.Equal(t, 0.25, d.Config().EARThreshold)
}

func TestStats(t *testing.T) {
	t.Parallel()

	t.Run("zero frames means zero percentage", func(t *testing.T) {
		t.Parallel()
		d := newTestDetector(t, 0.25, 2)
		assert.Equal(t, 0.0, d.Stats().DrowsyPercentage)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		t.Parallel()
		d := newTestDetector(t, 0.25, 1)
		d.Tick(0.10) // 1 drowsy
		d.Tick(0.30)
		d.Tick(0.30) // 1/3 -> 33.33%

		assert.Equal(t, 33.33, d.Stats().DrowsyPercentage)
	})

	t.Run("counts unreadable frames in the total", func(t *testing.T) {
		t.Parallel()
		d := newTestDetector(t, 0.25, 2)
		d.Tick(0.30)
		d.TickUnreadable(StatusNoFace)
		d.TickUnreadable(StatusMetricError)
		d.Tick(0.30)

		assert.Equal(t, int64(4), d.Stats().TotalFrames)
	})
}

func TestUpdateConfig(t *testing.T) {
	t.Parallel()

	t.Run("partial update leaves other fields unchanged", func(t *testing.T) {
		t.Parallel()
		d := newTestDetector(t, 0.25, 20)

		threshold := 0.31
		cfg, err := d.UpdateConfig(ConfigUpdate{EARThreshold: &threshold})
		require.NoError(t, err)
		assert.Equal(t, 0.31, cfg.EARThreshold)
		assert.Equal(t, 20, cfg.ConsecutiveFrames)
		assert.Equal(t, 10, cfg.WindowSize)
	})

	t.Run("rejects invalid values without applying any", func(t *testing.T) {
		t.Parallel()
		d := newTestDetector(t, 0.25, 20)

		threshold := 0.40
		frames := -5
		_, err := d.UpdateConfig(ConfigUpdate{
			EARThreshold:      &threshold,
			ConsecutiveFrames: &frames,
		})
		assert.ErrorIs(t, err, ErrConfigOutOfRange)

		// The valid field must not have been applied either.
		assert.Equal(t, 0.25, d.Config().EARThreshold)
		assert.Equal(t, 20, d.Config().ConsecutiveFrames)
	})

	t.Run("takes effect on the next tick", func(t *testing.T) {
		t.Parallel()
		d := newTestDetector(t, 0.25, 5)

		frames := 1
		_, err := d.UpdateConfig(ConfigUpdate{ConsecutiveFrames: &frames})
		require.NoError(t, err)

		res := d.Tick(0.10)
		assert.Equal(t, StatusDrowsy, res.Status)
		assert.True(t, res.AlertTriggered)
	})
}

func TestConcurrentTicks(t *testing.T) {
	t.Parallel()

	d := newTestDetector(t, 0.25, 1000000)

	const goroutines = 8
	const perGoroutine = 250

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				d.Tick(0.10)
			}
		}()
	}
	wg.Wait()

	// Every tick must have been counted exactly once.
	stats := d.Stats()
	assert.Equal(t, int64(goroutines*perGoroutine), stats.TotalFrames)
}
