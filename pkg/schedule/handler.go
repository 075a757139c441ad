package schedule

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/horarium/horarium/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetWeekday godoc
// @Summary Classes of a weekday
// @Description Returns the weekday's schedule entries grouped by time slot
// @Tags Schedule
// @Produce json
// @Param weekday path int true "Weekday (0 = Sunday)"
// @Param grade query int false "Academic year filter, 0 = all"
// @Success 200 {array} TimeGroup
// @Failure 400 {object} rest.ErrorResponse "Invalid weekday or grade"
// @Router /api/schedule/weekday/{weekday} [get]
func (h *Handler) GetWeekday(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil || weekday < 0 || weekday > 6 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid weekday",
			Details: "'weekday' must be an integer between 0 (Sunday) and 6 (Saturday)",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	yearFilter, ok := parseGrade(w, r)
	if !ok {
		return
	}

	groups, err := h.service.ForWeekday(r.Context(), time.Weekday(weekday), yearFilter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	if err := json.NewEncoder(w).Encode(groups); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetGrid godoc
// @Summary Weekly schedule grid
// @Description Returns the Monday-to-Friday schedule grid
// @Tags Schedule
// @Produce json
// @Param grade query int false "Academic year filter, 0 = all"
// @Success 200 {object} Grid
// @Failure 400 {object} rest.ErrorResponse "Invalid grade"
// @Router /api/schedule/grid [get]
func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	yearFilter, ok := parseGrade(w, r)
	if !ok {
		return
	}

	grid, err := h.service.Grid(r.Context(), yearFilter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	if err := json.NewEncoder(w).Encode(grid); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// parseGrade reads the optional academic year filter; absent means all years.
// On failure it writes the 400 response and returns ok=false.
func parseGrade(w http.ResponseWriter, r *http.Request) (int, bool) {
	gradeString := r.URL.Query().Get("grade")
	if gradeString == "" {
		return AllYears, true
	}
	grade, err := strconv.Atoi(gradeString)
	if err != nil || grade < 0 || grade > 5 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid grade",
			Details: "'grade' must be an integer between 0 (all years) and 5",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return 0, false
		}
		return 0, false
	}
	return grade, true
}
