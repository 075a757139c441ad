package dayview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/horarium/horarium/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDay_InvalidDate(t *testing.T) {
	handler := NewHandler(setupServiceTest(nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/day/17-02-2026", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "17-02-2026"})
	w := httptest.NewRecorder()

	handler.GetDay(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDay_InvalidGrade(t *testing.T) {
	handler := NewHandler(setupServiceTest(nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/day/2026-02-17?grade=7", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "2026-02-17"})
	w := httptest.NewRecorder()

	handler.GetDay(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDay_ReturnsDetail(t *testing.T) {
	handler := NewHandler(setupServiceTest(
		nil,
		[]schedule.Entry{{Weekday: 2, Time: "14:00", Year: 1, Discipline: "Matemática"}},
	))

	req := httptest.NewRequest(http.MethodGet, "/api/day/2026-02-17", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "2026-02-17"})
	w := httptest.NewRecorder()

	handler.GetDay(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var detail DayDetail
	require.NoError(t, json.NewDecoder(w.Body).Decode(&detail))
	assert.Equal(t, "terça-feira, 17 de fevereiro de 2026", detail.Title)
	require.NotNil(t, detail.Schedule)
	assert.Len(t, detail.Schedule.Groups, 1)
}
