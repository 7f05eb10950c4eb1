// Package tabular переводит записи о здоровье в CSV и XLSX и разбирает CSV при импорте.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// SheetName имя листа в XLSX-выгрузке.
const SheetName = "Health"

// Columns заголовок выгрузки и обязательные колонки импорта.
var Columns = []string{"Date", "Weight", "Height", "Systolic", "Diastolic", "Steps"}

// Ошибки разбора CSV.
var (
	ErrEmptyFile      = errors.New("file is empty")
	ErrMissingColumns = errors.New("header must contain Date, Weight, Height, Systolic, Diastolic, Steps")
	ErrColumnCount    = errors.New("row has wrong number of columns")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrDuplicateDate  = errors.New("date occurs more than once")
)

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func row(r models.HealthRecord) []string {
	var sys, dia *float64
	if r.BloodPressure != nil {
		sys, dia = r.BloodPressure.Systolic, r.BloodPressure.Diastolic
	}
	steps := ""
	if r.Steps != nil {
		steps = strconv.FormatInt(*r.Steps, 10)
	}
	return []string{r.Date, formatFloat(r.Weight), formatFloat(r.Height), formatFloat(sys), formatFloat(dia), steps}
}

// WriteCSV пишет записи с заголовком Columns.
func WriteCSV(w io.Writer, records []models.HealthRecord) error {
	const op = "tabular.WriteCSV"
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// WriteXLSX пишет книгу с одним листом SheetName. Числа сохраняются как числа.
func WriteXLSX(w io.Writer, records []models.HealthRecord) error {
	const op = "tabular.WriteXLSX"
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, r := range records {
		values := []any{r.Date, cell(r.Weight), cell(r.Height), nil, nil, nil}
		if r.BloodPressure != nil {
			values[3] = cell(r.BloodPressure.Systolic)
			values[4] = cell(r.BloodPressure.Diastolic)
		}
		if r.Steps != nil {
			values[5] = *r.Steps
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err = f.SetSheetRow(SheetName, axis, &values); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func cell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// ReadCSV разбирает выгрузку в формате WriteCSV. Заголовок должен содержать
// все колонки Columns в любом порядке, лишние колонки игнорируются.
// Каждая строка обязана иметь столько же полей, сколько заголовок.
func ReadCSV(r io.Reader) ([]models.HealthRecordInput, error) {
	const op = "tabular.ReadCSV"
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		index[h] = i
	}
	for _, c := range Columns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%s: %w", op, ErrMissingColumns)
		}
	}

	var (
		out  []models.HealthRecordInput
		seen = make(map[string]struct{})
		line = 1
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		line++
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%s: line %d: %w", op, line, ErrColumnCount)
		}
		in, err := parseRow(rec, index)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", op, line, err)
		}
		if _, dup := seen[in.Date]; dup {
			return nil, fmt.Errorf("%s: line %d: %w", op, line, ErrDuplicateDate)
		}
		seen[in.Date] = struct{}{}
		out = append(out, in)
	}
	return out, nil
}

func parseRow(rec []string, index map[string]int) (models.HealthRecordInput, error) {
	var in models.HealthRecordInput
	get := func(col string) string { return strings.TrimSpace(rec[index[col]]) }

	d, err := validation.ParseDate(get("Date"))
	if err != nil {
		return in, fmt.Errorf("%w %q", ErrInvalidDate, get("Date"))
	}
	in.Date = d.Format(models.DateLayout)

	if in.Weight, err = parseFloat(get("Weight")); err != nil {
		return in, err
	}
	if in.Height, err = parseFloat(get("Height")); err != nil {
		return in, err
	}
	sys, err := parseFloat(get("Systolic"))
	if err != nil {
		return in, err
	}
	dia, err := parseFloat(get("Diastolic"))
	if err != nil {
		return in, err
	}
	if sys != nil || dia != nil {
		in.BloodPressure = &models.BloodPressure{Systolic: sys, Diastolic: dia}
	}
	if s := get("Steps"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != math.Trunc(f) {
			return in, fmt.Errorf("%w %q", ErrInvalidNumber, s)
		}
		steps := int64(f)
		in.Steps = &steps
	}
	return in, nil
}

func parseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	return &f, nil
}
