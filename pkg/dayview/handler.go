package dayview

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/horarium/horarium/internal/rest"
	"github.com/horarium/horarium/pkg/calendar"
	"github.com/horarium/horarium/pkg/schedule"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetDay godoc
// @Summary Day detail
// @Description Returns the combined events and schedule view of a date
// @Tags Day
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD format"
// @Param grade query int false "Academic year filter, 0 = all"
// @Success 200 {object} DayDetail
// @Failure 400 {object} rest.ErrorResponse "Invalid date or grade"
// @Router /api/day/{date} [get]
func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	date, err := calendar.ParseDate(vars["date"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "'date' must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	yearFilter := schedule.AllYears
	if gradeString := r.URL.Query().Get("grade"); gradeString != "" {
		grade, err := strconv.Atoi(gradeString)
		if err != nil || grade < 0 || grade > 5 {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid grade",
				Details: "'grade' must be an integer between 0 (all years) and 5",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		yearFilter = grade
	}

	detail, err := h.service.ForDate(r.Context(), date, yearFilter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	if err := json.NewEncoder(w).Encode(detail); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
