// Package telemetry aggregates per-frame field measurements into windowed
// statistics and optional CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated field statistics for a time window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	TimeSec          float64 `csv:"time"`

	// Interaction state at window end
	HoverIntensity float64 `csv:"hover_intensity"`
	PointerX       float64 `csv:"pointer_x"`
	PointerY       float64 `csv:"pointer_y"`
	Hovering       bool    `csv:"hovering"`

	// Pointer events during the window
	Enters int `csv:"enters"`
	Moves  int `csv:"moves"`
	Leaves int `csv:"leaves"`

	// Elevation distribution sampled at window end
	ElevMean float64 `csv:"elev_mean"`
	ElevStd  float64 `csv:"elev_std"`
	ElevMin  float64 `csv:"elev_min"`
	ElevMax  float64 `csv:"elev_max"`
	ElevP10  float64 `csv:"elev_p10"`
	ElevP50  float64 `csv:"elev_p50"`
	ElevP90  float64 `csv:"elev_p90"`

	// Rendered output sampled at window end
	VisiblePoints int     `csv:"visible_points"`
	MeanPointSize float64 `csv:"mean_point_size"`
}

// ElevationStats summarizes a sampled elevation distribution.
type ElevationStats struct {
	Mean, Std, Min, Max float64
	P10, P50, P90       float64
}

// ComputeElevationStats calculates distribution statistics for a set of
// elevation samples. Returns zeros for an empty slice.
func ComputeElevationStats(values []float64) ElevationStats {
	n := len(values)
	if n == 0 {
		return ElevationStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var s ElevationStats
	s.Mean = stat.Mean(sorted, nil)
	s.Std = stat.StdDev(sorted, nil)
	if n == 1 {
		s.Std = 0
	}
	s.Min = sorted[0]
	s.Max = sorted[n-1]
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("time", s.TimeSec),
		slog.Float64("hover_intensity", s.HoverIntensity),
		slog.Float64("pointer_x", s.PointerX),
		slog.Float64("pointer_y", s.PointerY),
		slog.Bool("hovering", s.Hovering),
		slog.Int("enters", s.Enters),
		slog.Int("moves", s.Moves),
		slog.Int("leaves", s.Leaves),
		slog.Float64("elev_mean", s.ElevMean),
		slog.Float64("elev_std", s.ElevStd),
		slog.Float64("elev_min", s.ElevMin),
		slog.Float64("elev_max", s.ElevMax),
		slog.Float64("elev_p10", s.ElevP10),
		slog.Float64("elev_p50", s.ElevP50),
		slog.Float64("elev_p90", s.ElevP90),
		slog.Int("visible_points", s.VisiblePoints),
		slog.Float64("mean_point_size", s.MeanPointSize),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"time", s.TimeSec,
		"hover_intensity", s.HoverIntensity,
		"pointer_x", s.PointerX,
		"pointer_y", s.PointerY,
		"hovering", s.Hovering,
		"enters", s.Enters,
		"moves", s.Moves,
		"leaves", s.Leaves,
		"elev_mean", s.ElevMean,
		"elev_std", s.ElevStd,
		"elev_min", s.ElevMin,
		"elev_max", s.ElevMax,
		"elev_p10", s.ElevP10,
		"elev_p50", s.ElevP50,
		"elev_p90", s.ElevP90,
		"visible_points", s.VisiblePoints,
		"mean_point_size", s.MeanPointSize,
	)
}
