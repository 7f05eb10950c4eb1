package services

import (
	"context"
	"log/slog"
	"math"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// Метрики графиков.
const (
	MetricWeight        = "weight"
	MetricBloodPressure = "blood-pressure"
	MetricSteps         = "steps"
	MetricBloodSugar    = "blood-sugar"
	MetricSleep         = "sleep"
)

type series struct {
	label string
	value func(r models.HealthRecord) *float64
}

var chartSeries = map[string][]series{
	MetricWeight: {{"Weight", func(r models.HealthRecord) *float64 { return r.Weight }}},
	MetricBloodPressure: {
		{"Systolic", systolic},
		{"Diastolic", diastolic},
	},
	MetricSteps:      {{"Steps", steps}},
	MetricBloodSugar: {{"Blood sugar", func(r models.HealthRecord) *float64 { return r.BloodSugar }}},
	MetricSleep:      {{"Sleep hours", func(r models.HealthRecord) *float64 { return r.SleepHours }}},
}

func systolic(r models.HealthRecord) *float64 {
	if r.BloodPressure == nil {
		return nil
	}
	return r.BloodPressure.Systolic
}

func diastolic(r models.HealthRecord) *float64 {
	if r.BloodPressure == nil {
		return nil
	}
	return r.BloodPressure.Diastolic
}

func steps(r models.HealthRecord) *float64 {
	if r.Steps == nil {
		return nil
	}
	v := float64(*r.Steps)
	return &v
}

// computeStats считает avg/min/max/count по непустым значениям.
func computeStats(records []models.HealthRecord, value func(models.HealthRecord) *float64) models.MetricStats {
	var (
		sum, lo, hi float64
		n           int
	)
	for _, r := range records {
		v := value(r)
		if v == nil || math.IsNaN(*v) {
			continue
		}
		if n == 0 || *v < lo {
			lo = *v
		}
		if n == 0 || *v > hi {
			hi = *v
		}
		sum += *v
		n++
	}
	if n == 0 {
		return models.MetricStats{}
	}
	avg := sum / float64(n)
	return models.MetricStats{Avg: &avg, Min: &lo, Max: &hi, Count: n}
}

// Stats считает сводную статистику за период. Без фильтра результат кешируется.
func (s *HealthService) Stats(ctx context.Context, userID string, dr models.DateRange) (*models.HealthStats, error) {
	cacheable := dr == models.DateRange{}
	if cacheable {
		var cached models.HealthStats
		found, err := s.cache.Get(ctx, statsKey(userID), &cached)
		if err != nil {
			s.log.Warn("failed to read stats from cache", sl.Err(err))
		}
		if found {
			return &cached, nil
		}
	}

	records, err := s.inRange(ctx, userID, dr, "no health records found")
	if err != nil {
		return nil, err
	}

	var total int64
	for _, r := range records {
		if r.Steps != nil {
			total += *r.Steps
		}
	}
	stats := &models.HealthStats{
		Weight: computeStats(records, func(r models.HealthRecord) *float64 { return r.Weight }),
		Height: computeStats(records, func(r models.HealthRecord) *float64 { return r.Height }),
		BloodPressure: models.BloodPressureStats{
			Systolic:  computeStats(records, systolic),
			Diastolic: computeStats(records, diastolic),
		},
		Steps: models.StepStats{MetricStats: computeStats(records, steps), Total: total},
		DateRange: models.StatsDateRange{
			Start: records[0].Date,
			End:   records[len(records)-1].Date,
			Count: len(records),
		},
	}

	if cacheable {
		if err := s.cache.Set(ctx, statsKey(userID), stats, statsTTL); err != nil {
			s.log.Warn("failed to cache stats", slog.String("key", statsKey(userID)), sl.Err(err))
		}
	}
	return stats, nil
}

// Chart строит ряды для графика метрики. Пропущенные значения передаются как null.
func (s *HealthService) Chart(ctx context.Context, userID, metric string, dr models.DateRange) (*models.Chart, error) {
	defs, ok := chartSeries[metric]
	if !ok {
		return nil, apperr.Invalid("unsupported metric", apperr.FieldError{
			Field:   "metric",
			Message: "metric must be one of weight, blood-pressure, steps, blood-sugar, sleep",
		})
	}

	records, err := s.inRange(ctx, userID, dr, "no chart data found")
	if err != nil {
		return nil, err
	}

	chart := &models.Chart{Labels: make([]string, 0, len(records))}
	for _, r := range records {
		chart.Labels = append(chart.Labels, r.Date)
	}
	for _, def := range defs {
		ds := models.ChartDataset{Label: def.label, Data: make([]*float64, 0, len(records))}
		for _, r := range records {
			ds.Data = append(ds.Data, def.value(r))
		}
		chart.Datasets = append(chart.Datasets, ds)
	}
	return chart, nil
}
