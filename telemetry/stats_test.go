package telemetry

import (
	"math"
	"testing"
)

func TestComputeElevationStats(t *testing.T) {
	values := []float64{-1, -0.5, 0, 0.5, 1}
	s := ComputeElevationStats(values)

	if math.Abs(s.Mean) > 1e-9 {
		t.Errorf("expected mean 0, got %f", s.Mean)
	}
	if s.Min != -1 || s.Max != 1 {
		t.Errorf("expected min/max -1/1, got %f/%f", s.Min, s.Max)
	}
	if s.P50 != 0 {
		t.Errorf("expected median 0, got %f", s.P50)
	}
	if s.Std <= 0 {
		t.Errorf("expected positive std, got %f", s.Std)
	}
	if s.P10 > s.P50 || s.P50 > s.P90 {
		t.Errorf("expected ordered quantiles, got p10=%f p50=%f p90=%f", s.P10, s.P50, s.P90)
	}
}

func TestComputeElevationStatsEmpty(t *testing.T) {
	s := ComputeElevationStats(nil)
	if s.Mean != 0 || s.Std != 0 || s.Min != 0 || s.Max != 0 {
		t.Errorf("expected zero stats for empty input, got %+v", s)
	}
}

func TestComputeElevationStatsSingle(t *testing.T) {
	s := ComputeElevationStats([]float64{0.7})
	if s.Mean != 0.7 || s.Min != 0.7 || s.Max != 0.7 {
		t.Errorf("expected all stats 0.7, got %+v", s)
	}
	if s.Std != 0 {
		t.Errorf("expected zero std for single sample, got %f", s.Std)
	}
}

func TestComputeElevationStatsDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeElevationStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestCollectorWindowing(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	if c.WindowFrames() != 60 {
		t.Errorf("expected 60 frames per window, got %d", c.WindowFrames())
	}
	if c.ShouldFlush(30) {
		t.Error("should not flush mid-window")
	}
	if !c.ShouldFlush(60) {
		t.Error("should flush at window boundary")
	}
}

func TestCollectorFlushResetsCounters(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	c.RecordEnter()
	c.RecordMove()
	c.RecordMove()
	c.RecordLeave()

	stats := c.Flush(60, FrameSample{
		TimeSec:        1.0,
		HoverIntensity: 0.5,
		PointerX:       0.2,
		PointerY:       -0.1,
		Hovering:       true,
		Elevations:     []float64{-0.5, 0, 0.5},
		VisiblePoints:  1000,
		MeanPointSize:  2.5,
	})

	if stats.Enters != 1 || stats.Moves != 2 || stats.Leaves != 1 {
		t.Errorf("expected counts 1/2/1, got %d/%d/%d", stats.Enters, stats.Moves, stats.Leaves)
	}
	if stats.HoverIntensity != 0.5 || !stats.Hovering {
		t.Errorf("sample not carried through: %+v", stats)
	}
	if stats.VisiblePoints != 1000 || stats.MeanPointSize != 2.5 {
		t.Errorf("render sample not carried through: %+v", stats)
	}
	if stats.WindowStartFrame != 0 || stats.WindowEndFrame != 60 {
		t.Errorf("expected window [0, 60], got [%d, %d]", stats.WindowStartFrame, stats.WindowEndFrame)
	}

	// Next window starts clean
	next := c.Flush(120, FrameSample{})
	if next.Enters != 0 || next.Moves != 0 || next.Leaves != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartFrame != 60 {
		t.Errorf("expected next window start 60, got %d", next.WindowStartFrame)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 1.0/60.0)
	if c.WindowFrames() != 1 {
		t.Errorf("expected minimum window of 1 frame, got %d", c.WindowFrames())
	}
}
