package calendar

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/horarium/horarium/internal/rest"
	"github.com/horarium/horarium/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	clock   utils.Clock
}

type EventDTO struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag,omitempty"`
	Marker      bool   `json:"marker,omitempty"`
	Date        string `json:"date,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
}

func NewHandler(service *Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

// GetEvents godoc
// @Summary List events for a date
// @Description Returns the calendar events matching a single date
// @Tags Calendar
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format"
// @Success 200 {array} EventDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid date format"
// @Router /api/calendar/events [get]
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	dateString := r.URL.Query().Get("date")
	date, err := ParseDate(dateString)
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

	events, err := h.service.EventsForDate(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetMonth godoc
// @Summary Month grid
// @Description Returns the month grid view model for a year and month
// @Tags Calendar
// @Produce json
// @Param year query int true "Calendar year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} MonthGrid
// @Failure 400 {object} rest.ErrorResponse "Invalid year or month"
// @Router /api/calendar/month [get]
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid year or month",
			Details: "'year' must be an integer and 'month' an integer between 1 and 12",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	grid, err := h.service.MonthGrid(r.Context(), year, time.Month(month), DateOf(h.clock.Now()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(grid); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetICal godoc
// @Summary iCalendar feed
// @Description Returns the full academic calendar as an iCalendar document
// @Tags Calendar
// @Produce text/calendar
// @Success 200 {string} string
// @Router /api/calendar/ical [get]
func (h *Handler) GetICal(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.ICal(r.Context(), h.clock.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(feed)); err != nil {
		log.Errorf("failed to write ical feed: %v", err)
	}
}

func eventToDTO(e Event) EventDTO {
	dto := EventDTO{
		Type:        e.Type,
		Title:       e.Title,
		Description: e.Description,
		Tag:         e.Tag,
		Marker:      e.Marker,
	}
	switch a := e.Anchor.(type) {
	case PointAnchor:
		dto.Date = a.Date.String()
	case RangeAnchor:
		dto.Start = a.Start.String()
		dto.End = a.End.String()
	}
	return dto
}
