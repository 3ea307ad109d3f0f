package services

import (
	"math"
	"time"

	"github.com/zachhersick/macro-muse-mvp/models"
)

// ChartPoint is one chart-ready sample. Date is a short human label like
// "Jan 2"; FullDate keeps the original timestamp for tooltips. A nil Value
// tells the line renderer to break the line instead of drawing a false zero.
type ChartPoint struct {
	Date     string    `json:"date"`
	Value    *float64  `json:"value"`
	FullDate time.Time `json:"full_date"`
}

// CompositionPoint carries every composition metric of one log entry, each
// independently nil-able.
type CompositionPoint struct {
	Date            string    `json:"date"`
	BodyFat         *float64  `json:"body_fat"`
	MuscleMass      *float64  `json:"muscle_mass"`
	WaterPercentage *float64  `json:"water_percentage"`
	VisceralFat     *float64  `json:"visceral_fat"`
	FullDate        time.Time `json:"full_date"`
}

// Trend classifies the short-horizon direction of a weight series.
type Trend struct {
	Direction string  `json:"direction"` // up | down | stable
	Magnitude float64 `json:"magnitude"` // kg, 0 for stable
}

// trendThresholdKg is the dead band around zero: day-to-day noise under
// 0.1 kg reads as "stable".
const trendThresholdKg = 0.1

func shortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// WeightSeries maps weight logs to chart points, preserving input order.
// Callers query ascending by logged_at; no gap filling or interpolation.
func WeightSeries(rows []models.WeightLog) []ChartPoint {
	points := make([]ChartPoint, 0, len(rows))
	for _, r := range rows {
		w := r.WeightKg
		points = append(points, ChartPoint{
			Date:     shortDate(r.LoggedAt),
			Value:    &w,
			FullDate: r.LoggedAt,
		})
	}
	return points
}

// CompositionSeries maps composition logs to chart points. N rows produce
// exactly N points; absent fields stay nil, and rows are never dropped or
// reordered.
func CompositionSeries(rows []models.BodyCompositionLog) []CompositionPoint {
	points := make([]CompositionPoint, 0, len(rows))
	for _, r := range rows {
		p := CompositionPoint{
			Date:            shortDate(r.LoggedAt),
			BodyFat:         r.BodyFatPercentage,
			MuscleMass:      r.MuscleMassKg,
			WaterPercentage: r.WaterPercentage,
			FullDate:        r.LoggedAt,
		}
		if r.VisceralFatRating != nil {
			v := float64(*r.VisceralFatRating)
			p.VisceralFat = &v
		}
		points = append(points, p)
	}
	return points
}

// ComputeTrend compares the last two entries of an ascending weight series.
// Fewer than two entries means no trend; callers hide the indicator.
func ComputeTrend(rows []models.WeightLog) *Trend {
	if len(rows) < 2 {
		return nil
	}
	last := rows[len(rows)-1].WeightKg
	secondLast := rows[len(rows)-2].WeightKg
	diff := last - secondLast

	switch {
	case diff > trendThresholdKg:
		return &Trend{Direction: "up", Magnitude: diff}
	case diff < -trendThresholdKg:
		return &Trend{Direction: "down", Magnitude: math.Abs(diff)}
	default:
		return &Trend{Direction: "stable", Magnitude: 0}
	}
}

// GroupByMeasurementType partitions measurements into per-site chart
// series, preserving each site's chronological order. The latest value for
// a site is the last element of its series.
func GroupByMeasurementType(rows []models.BodyMeasurement) map[string][]ChartPoint {
	groups := make(map[string][]ChartPoint)
	for _, r := range rows {
		v := r.ValueCm
		groups[r.MeasurementType] = append(groups[r.MeasurementType], ChartPoint{
			Date:     shortDate(r.LoggedAt),
			Value:    &v,
			FullDate: r.LoggedAt,
		})
	}
	return groups
}
