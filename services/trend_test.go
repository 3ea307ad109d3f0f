package services

import (
	"testing"
	"time"

	"github.com/zachhersick/macro-muse-mvp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightLogs(values ...float64) []models.WeightLog {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	logs := make([]models.WeightLog, 0, len(values))
	for i, v := range values {
		logs = append(logs, models.WeightLog{
			WeightKg: v,
			LoggedAt: base.AddDate(0, 0, i),
		})
	}
	return logs
}

func TestComputeTrendTooFewPoints(t *testing.T) {
	assert.Nil(t, ComputeTrend(nil))
	assert.Nil(t, ComputeTrend(weightLogs(70.0)))
}

func TestComputeTrendStable(t *testing.T) {
	trend := ComputeTrend(weightLogs(70.0, 70.0))
	require.NotNil(t, trend)
	assert.Equal(t, "stable", trend.Direction)
	assert.Equal(t, 0.0, trend.Magnitude)
}

func TestComputeTrendWithinThresholdIsStable(t *testing.T) {
	// 0.05 kg is inside the 0.1 kg dead band
	trend := ComputeTrend(weightLogs(70.0, 70.05))
	require.NotNil(t, trend)
	assert.Equal(t, "stable", trend.Direction)
	assert.Equal(t, 0.0, trend.Magnitude)
}

func TestComputeTrendUp(t *testing.T) {
	trend := ComputeTrend(weightLogs(70.0, 71.2))
	require.NotNil(t, trend)
	assert.Equal(t, "up", trend.Direction)
	assert.InDelta(t, 1.2, trend.Magnitude, 1e-9)
}

func TestComputeTrendDown(t *testing.T) {
	trend := ComputeTrend(weightLogs(71.2, 70.0))
	require.NotNil(t, trend)
	assert.Equal(t, "down", trend.Direction)
	assert.InDelta(t, 1.2, trend.Magnitude, 1e-9)
}

func TestComputeTrendUsesLastTwoPoints(t *testing.T) {
	trend := ComputeTrend(weightLogs(80.0, 75.0, 74.0, 74.5))
	require.NotNil(t, trend)
	assert.Equal(t, "up", trend.Direction)
	assert.InDelta(t, 0.5, trend.Magnitude, 1e-9)
}

func TestWeightSeriesPreservesOrder(t *testing.T) {
	logs := weightLogs(80.0, 79.4, 79.9)
	series := WeightSeries(logs)

	require.Len(t, series, 3)
	for i, p := range series {
		require.NotNil(t, p.Value)
		assert.Equal(t, logs[i].WeightKg, *p.Value)
		assert.Equal(t, logs[i].LoggedAt, p.FullDate)
	}
	assert.Equal(t, "Mar 1", series[0].Date)
	assert.Equal(t, "Mar 3", series[2].Date)
}

func TestCompositionSeriesKeepsGapsAsNil(t *testing.T) {
	bf := 15.5
	mm := 35.2
	vf := 8
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	rows := []models.BodyCompositionLog{
		{BodyFatPercentage: &bf, LoggedAt: base},
		{MuscleMassKg: &mm, VisceralFatRating: &vf, LoggedAt: base.AddDate(0, 0, 1)},
	}

	series := CompositionSeries(rows)
	require.Len(t, series, 2) // N rows, N points, nothing dropped

	require.NotNil(t, series[0].BodyFat)
	assert.Equal(t, 15.5, *series[0].BodyFat)
	assert.Nil(t, series[0].MuscleMass)
	assert.Nil(t, series[0].VisceralFat)

	assert.Nil(t, series[1].BodyFat)
	require.NotNil(t, series[1].MuscleMass)
	assert.Equal(t, 35.2, *series[1].MuscleMass)
	require.NotNil(t, series[1].VisceralFat)
	assert.Equal(t, 8.0, *series[1].VisceralFat)
}

func TestGroupByMeasurementType(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 0, 1)
	t3 := t1.AddDate(0, 0, 2)

	rows := []models.BodyMeasurement{
		{MeasurementType: "waist", ValueCm: 80, LoggedAt: t1},
		{MeasurementType: "chest", ValueCm: 95, LoggedAt: t2},
		{MeasurementType: "waist", ValueCm: 78, LoggedAt: t3},
	}

	groups := GroupByMeasurementType(rows)
	require.Len(t, groups, 2)

	waist := groups["waist"]
	require.Len(t, waist, 2)
	assert.Equal(t, 80.0, *waist[0].Value)
	assert.Equal(t, 78.0, *waist[1].Value) // per-group order preserved; latest is 78

	chest := groups["chest"]
	require.Len(t, chest, 1)
	assert.Equal(t, 95.0, *chest[0].Value)
}

func TestGroupByMeasurementTypeEmpty(t *testing.T) {
	assert.Empty(t, GroupByMeasurementType(nil))
}
