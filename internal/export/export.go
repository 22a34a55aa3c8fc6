// Package export turns record sets into downloadable tabular files. It never
// aggregates; every record becomes exactly one row.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

// Format selects the serialization of an export.
type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

// ErrUnsupportedFormat is returned for any format other than excel or csv.
var ErrUnsupportedFormat = errors.New("unsupported export format")

var (
	activityHeaders = []string{"Employee", "Date", "Client", "Project", "Activity Type", "Hours", "Achievements", "Challenges"}
	expenseHeaders  = []string{"Employee", "Date", "Project", "Category", "Description", "Amount", "Status"}
)

// ContentType returns the MIME type served for this format.
func (f Format) ContentType() string {
	if f == FormatExcel {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Extension returns the file extension used for download names.
func (f Format) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return "csv"
}

// Activities renders the given activity records, one row each, owner name
// first in every row.
func Activities(employee string, activities []model.Activity, format Format) ([]byte, error) {
	rows := make([][]any, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []any{
			employee, a.Date.String(), a.Client, a.Project,
			a.ActivityType, a.Hours, a.Achievements, a.Challenges,
		})
	}
	return render(activityHeaders, rows, format)
}

// Expenses renders the given expense records, one row each.
func Expenses(employee string, expenses []model.Expense, format Format) ([]byte, error) {
	rows := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []any{
			employee, e.Date.String(), e.Project, e.Category,
			e.Description, e.Amount, e.Status,
		})
	}
	return render(expenseHeaders, rows, format)
}

func render(headers []string, rows [][]any, format Format) ([]byte, error) {
	switch format {
	case FormatExcel:
		return renderExcel(headers, rows)
	case FormatCSV:
		return renderCSV(headers, rows)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func renderExcel(headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCSV(headers []string, rows [][]any) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
