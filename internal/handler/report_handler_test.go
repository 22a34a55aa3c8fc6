package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/report"
)

type stubReportStore struct {
	activities []model.Activity
}

func (s *stubReportStore) ListByDateRange(ctx context.Context, userID int, start, end model.Date) ([]model.Activity, error) {
	return report.FilterRange(s.activities, start, end), nil
}

func (s *stubReportStore) ListByClient(ctx context.Context, userID int, client string) ([]model.Activity, error) {
	matched := []model.Activity{}
	for _, a := range s.activities {
		if a.Client == client {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *stubReportStore) ListByProject(ctx context.Context, userID int, project string) ([]model.Activity, error) {
	matched := []model.Activity{}
	for _, a := range s.activities {
		if a.Project == project {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func reportRouter(store report.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewReportHandler(report.NewService(store), nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", 1)
	})
	r.POST("/api/reports/weekly", h.Weekly)
	r.POST("/api/reports/monthly", h.Monthly)
	r.POST("/api/reports/client", h.Client)
	r.POST("/api/reports/project", h.Project)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWeeklyReportEndpoint(t *testing.T) {
	store := &stubReportStore{activities: []model.Activity{
		{Date: model.NewDate(2024, time.January, 10), Client: "Acme", Project: "Website", Hours: 4},
		{Date: model.NewDate(2024, time.January, 20), Client: "Acme", Project: "Website", Hours: 9},
	}}
	r := reportRouter(store)

	w := postJSON(t, r, "/api/reports/weekly", `{"start_date":"2024-01-10"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var payload report.Payload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(t, 4.0, payload.TotalHours)
	require.Equal(t, 1, payload.WorkingDays)
}

func TestWeeklyReportInvalidDate(t *testing.T) {
	r := reportRouter(&stubReportStore{})

	w := postJSON(t, r, "/api/reports/weekly", `{"start_date":"not-a-date"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientReportZeroMatchEcho(t *testing.T) {
	r := reportRouter(&stubReportStore{})

	w := postJSON(t, r, "/api/reports/client", `{"client":"Acme"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var payload report.Payload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(t, map[string]float64{"Acme": 0}, payload.Clients)
	require.NotNil(t, payload.Activities)
}

func TestClientReportMissingFilter(t *testing.T) {
	r := reportRouter(&stubReportStore{})

	w := postJSON(t, r, "/api/reports/client", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectReportMissingFilter(t *testing.T) {
	r := reportRouter(&stubReportStore{})

	w := postJSON(t, r, "/api/reports/project", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonthlyReportEndpoint(t *testing.T) {
	store := &stubReportStore{activities: []model.Activity{
		{Date: model.NewDate(2024, time.December, 1), Client: "Acme", Project: "Website", Hours: 3},
		{Date: model.NewDate(2024, time.December, 31), Client: "Acme", Project: "Website", Hours: 5},
		{Date: model.NewDate(2025, time.January, 1), Client: "Acme", Project: "Website", Hours: 7},
	}}
	r := reportRouter(store)

	w := postJSON(t, r, "/api/reports/monthly", `{"month":"2024-12"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var payload report.Payload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(t, 8.0, payload.TotalHours)
}
