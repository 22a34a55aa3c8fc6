package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

func sampleActivities() []model.Activity {
	return []model.Activity{
		{
			Date:         model.NewDate(2024, time.January, 10),
			Client:       "Acme",
			Project:      "Website",
			ActivityType: "Programming",
			Achievements: "Shipped the login page",
			Challenges:   "Flaky CI",
			Hours:        7.5,
		},
		{
			Date:         model.NewDate(2024, time.January, 9),
			Client:       "Globex",
			Project:      "Maintenance",
			ActivityType: "Code review",
			Achievements: "",
			Challenges:   "",
			Hours:        2,
		},
	}
}

func TestActivitiesCSV(t *testing.T) {
	data, err := Activities("alice", sampleActivities(), FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	require.Equal(t, []string{"Employee", "Date", "Client", "Project", "Activity Type", "Hours", "Achievements", "Challenges"}, records[0])
	require.Equal(t, []string{"alice", "2024-01-10", "Acme", "Website", "Programming", "7.5", "Shipped the login page", "Flaky CI"}, records[1])
	require.Equal(t, []string{"alice", "2024-01-09", "Globex", "Maintenance", "Code review", "2", "", ""}, records[2])
}

func TestActivitiesExcelRoundTrip(t *testing.T) {
	data, err := Activities("alice", sampleActivities(), FormatExcel)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	require.Equal(t, []string{"Employee", "Date", "Client", "Project", "Activity Type", "Hours", "Achievements", "Challenges"}, rows[0])
	require.Equal(t, "alice", rows[1][0])
	require.Equal(t, "2024-01-10", rows[1][1])
	require.Equal(t, "7.5", rows[1][5])
}

func TestExpensesCSV(t *testing.T) {
	expenses := []model.Expense{
		{
			Date:        model.NewDate(2024, time.February, 3),
			Project:     "Consulting",
			Amount:      120.5,
			Description: "Train tickets",
			Category:    "Travel",
			Status:      "pending",
		},
	}

	data, err := Expenses("bob", expenses, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	require.Equal(t, []string{"Employee", "Date", "Project", "Category", "Description", "Amount", "Status"}, records[0])
	require.Equal(t, []string{"bob", "2024-02-03", "Consulting", "Travel", "Train tickets", "120.5", "pending"}, records[1])
}

func TestEmptyRecordSetStillHasHeader(t *testing.T) {
	data, err := Activities("alice", nil, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := Activities("alice", sampleActivities(), Format("pdf"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatMetadata(t *testing.T) {
	require.Equal(t, "xlsx", FormatExcel.Extension())
	require.Equal(t, "csv", FormatCSV.Extension())
	require.Contains(t, FormatExcel.ContentType(), "spreadsheetml")
	require.Contains(t, FormatCSV.ContentType(), "text/csv")
}
