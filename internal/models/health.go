package models

import "time"

// DateLayout формат календарного дня в запросах, ответах и хранилище.
const DateLayout = "2006-01-02"

// BloodPressure давление в мм рт. ст.
type BloodPressure struct {
	Systolic  *float64 `json:"systolic,omitempty" validate:"omitempty,gte=0,lte=300"`
	Diastolic *float64 `json:"diastolic,omitempty" validate:"omitempty,gte=0,lte=200"`
}

// HealthRecord запись показателей пользователя за один день.
// Пара (UserID, Date) уникальна.
type HealthRecord struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Date          string         `json:"date"`
	Weight        *float64       `json:"weight,omitempty"`
	Height        *float64       `json:"height,omitempty"`
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty"`
	BloodSugar    *float64       `json:"bloodSugar,omitempty"`
	Steps         *int64         `json:"steps,omitempty"`
	SleepHours    *float64       `json:"sleepHours,omitempty"`
	Note          string         `json:"note,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// HealthMetrics изменяемые показатели записи.
type HealthMetrics struct {
	Weight        *float64       `json:"weight" validate:"omitempty,gte=0,lte=500"`
	Height        *float64       `json:"height" validate:"omitempty,gte=0,lte=300"`
	BloodPressure *BloodPressure `json:"bloodPressure"`
	BloodSugar    *float64       `json:"bloodSugar" validate:"omitempty,gte=0,lte=1000"`
	Steps         *int64         `json:"steps" validate:"omitempty,gte=0"`
	SleepHours    *float64       `json:"sleepHours" validate:"omitempty,gte=0,lte=24"`
	Note          *string        `json:"note" validate:"omitempty,max=500"`
}

// HealthRecordInput тело запроса на создание записи.
type HealthRecordInput struct {
	Date string `json:"date" validate:"required,day"`
	HealthMetrics
}

// Apply переносит заданные показатели в запись.
func (m HealthMetrics) Apply(r *HealthRecord) {
	if m.Weight != nil {
		r.Weight = m.Weight
	}
	if m.Height != nil {
		r.Height = m.Height
	}
	if m.BloodPressure != nil {
		if r.BloodPressure == nil {
			r.BloodPressure = &BloodPressure{}
		}
		if m.BloodPressure.Systolic != nil {
			r.BloodPressure.Systolic = m.BloodPressure.Systolic
		}
		if m.BloodPressure.Diastolic != nil {
			r.BloodPressure.Diastolic = m.BloodPressure.Diastolic
		}
	}
	if m.BloodSugar != nil {
		r.BloodSugar = m.BloodSugar
	}
	if m.Steps != nil {
		r.Steps = m.Steps
	}
	if m.SleepHours != nil {
		r.SleepHours = m.SleepHours
	}
	if m.Note != nil {
		r.Note = *m.Note
	}
}

// DateRange фильтр по датам в формате DateLayout. Пустые границы не ограничивают выборку.
type DateRange struct {
	Start string
	End   string
}

// ListQuery параметры постраничного списка.
type ListQuery struct {
	Page  int
	Limit int
	DateRange
}

// Offset смещение первой записи страницы.
func (q ListQuery) Offset() int64 {
	return int64((q.Page - 1) * q.Limit)
}

// Pagination метаданные страницы.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalDocs   int64 `json:"totalDocs"`
	Limit       int   `json:"limit"`
}

// NewPagination считает число страниц по общему количеству документов.
func NewPagination(q ListQuery, total int64) Pagination {
	pages := 0
	if q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return Pagination{
		CurrentPage: q.Page,
		TotalPages:  pages,
		TotalDocs:   total,
		Limit:       q.Limit,
	}
}

// Page страница результатов.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// MetricStats агрегаты по одному показателю. При отсутствии значений Avg, Min и Max равны nil.
type MetricStats struct {
	Avg   *float64 `json:"avg"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// StepStats агрегаты по шагам с суммой.
type StepStats struct {
	MetricStats
	Total int64 `json:"total"`
}

// BloodPressureStats агрегаты по давлению.
type BloodPressureStats struct {
	Systolic  MetricStats `json:"systolic"`
	Diastolic MetricStats `json:"diastolic"`
}

// StatsDateRange охват выборки.
type StatsDateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

// HealthStats сводная статистика по записям пользователя.
type HealthStats struct {
	Weight        MetricStats        `json:"weight"`
	Height        MetricStats        `json:"height"`
	BloodPressure BloodPressureStats `json:"bloodPressure"`
	Steps         StepStats          `json:"steps"`
	DateRange     StatsDateRange     `json:"dateRange"`
}

// ChartDataset ряд данных графика. Пропуски передаются как null.
type ChartDataset struct {
	Label string     `json:"label"`
	Data  []*float64 `json:"data"`
}

// Chart данные для построения графика.
type Chart struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// DeleteManyInput запрос на удаление нескольких записей.
type DeleteManyInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// DeleteResult количество удалённых записей.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

// ImportResult количество импортированных записей.
type ImportResult struct {
	Imported int `json:"imported"`
}
