package app

import (
	"github.com/gorilla/mux"
	"github.com/horarium/horarium/internal/config"
)

// RegisterRoutes registers all API endpoints and pages.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar
	r.HandleFunc("/api/calendar/events", deps.CalendarHandler.GetEvents).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/calendar/month", deps.CalendarHandler.GetMonth).Queries("year", "{year}", "month", "{month}").Methods("GET")
	r.HandleFunc("/api/calendar/ical", deps.CalendarHandler.GetICal).Methods("GET")

	// Day detail
	r.HandleFunc("/api/day/{date}", deps.DayViewHandler.GetDay).Methods("GET")

	// Schedule
	r.HandleFunc("/api/schedule/weekday/{weekday}", deps.ScheduleHandler.GetWeekday).Methods("GET")
	r.HandleFunc("/api/schedule/grid", deps.ScheduleHandler.GetGrid).Methods("GET")

	// Pages
	if cfg.Frontend.Enabled {
		r.HandleFunc("/", deps.Pages.Home).Methods("GET")
		r.HandleFunc("/calendario", deps.Pages.Calendar).Methods("GET")
		r.HandleFunc("/calendario/{date}", deps.Pages.Day).Methods("GET")
		r.HandleFunc("/horario", deps.Pages.Schedule).Methods("GET")
	}
}
