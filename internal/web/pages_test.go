package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/horarium/horarium/internal/utils"
	"github.com/horarium/horarium/pkg/calendar"
	"github.com/horarium/horarium/pkg/dayview"
	"github.com/horarium/horarium/pkg/schedule"
	"github.com/stretchr/testify/assert"
)

// Test setup helper
func setupPagesTest(events []calendar.Event, entries []schedule.Entry) (*Pages, *calendar.RepositoryStub, *schedule.RepositoryStub) {
	calendarRepo := calendar.NewRepositoryStub(events)
	scheduleRepo := schedule.NewRepositoryStub(entries)
	calendarService := calendar.NewService(calendarRepo)
	scheduleService := schedule.NewService(scheduleRepo, nil)
	dayviewService := dayview.NewService(calendarService, scheduleService)
	clock := &utils.MockClock{FixedNow: time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)}
	return NewPages(calendarService, scheduleService, dayviewService, clock), calendarRepo, scheduleRepo
}

func TestCalendarPage_RendersMonth(t *testing.T) {
	pages, _, _ := setupPagesTest([]calendar.Event{
		{Type: "evento", Title: "Feira", Anchor: calendar.PointAnchor{Date: calendar.Date{Year: 2026, Month: time.February, Day: 14}}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/calendario", nil)
	w := httptest.NewRecorder()

	pages.Calendar(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Fevereiro 2026")
	assert.Contains(t, body, "cal-evento")
	assert.Contains(t, body, "calendar-cell--today")
}

func TestCalendarPage_DatasetUnavailable(t *testing.T) {
	pages, calendarRepo, _ := setupPagesTest(nil, nil)
	calendarRepo.SetError(errors.New("file missing"))

	req := httptest.NewRequest(http.MethodGet, "/calendario", nil)
	w := httptest.NewRecorder()

	pages.Calendar(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Erro ao carregar o calendário")
}

func TestDayPage_WeekdaySchedule(t *testing.T) {
	pages, _, _ := setupPagesTest(nil, []schedule.Entry{
		{Weekday: 2, Time: "14:00", Year: 1, Discipline: "Matemática"},
	})

	req := httptest.NewRequest(http.MethodGet, "/calendario/2026-02-17", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "2026-02-17"})
	w := httptest.NewRecorder()

	pages.Day(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "terça-feira, 17 de fevereiro de 2026")
	assert.Contains(t, body, "Matemática")
	assert.Contains(t, body, "Todos")
}

func TestDayPage_InvalidDate(t *testing.T) {
	pages, _, _ := setupPagesTest(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/calendario/not-a-date", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "not-a-date"})
	w := httptest.NewRecorder()

	pages.Day(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSchedulePage_RendersGridWithFilter(t *testing.T) {
	pages, _, _ := setupPagesTest(nil, []schedule.Entry{
		{Weekday: 1, Time: "14:00", Year: 1, Discipline: "Matemática I"},
		{Weekday: 1, Time: "14:00", Year: 2, Discipline: "Física II"},
	})

	req := httptest.NewRequest(http.MethodGet, "/horario?grade=2", nil)
	w := httptest.NewRecorder()

	pages.Schedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Física II")
	assert.NotContains(t, body, "Matemática I")
	assert.Contains(t, body, "schedule-card--blue")
}
