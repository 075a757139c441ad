package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/horarium/horarium/internal/utils"
	"github.com/horarium/horarium/pkg/calendar"
	"github.com/horarium/horarium/pkg/dayview"
	"github.com/horarium/horarium/pkg/schedule"
	"github.com/horarium/horarium/pkg/view"
	log "github.com/sirupsen/logrus"
)

// Inline messages shown in place of a section when its dataset failed to
// load. Wording follows the site's language.
const (
	calendarLoadError = "Erro ao carregar o calendário. Verifique se os dados do calendário estão disponíveis."
	scheduleLoadError = "Erro ao carregar o horário. Verifique se os dados do horário estão disponíveis."
)

type Pages struct {
	calendar *calendar.Service
	schedule *schedule.Service
	dayview  *dayview.Service
	clock    utils.Clock
}

func NewPages(calendarService *calendar.Service, scheduleService *schedule.Service, dayviewService *dayview.Service, clock utils.Clock) *Pages {
	return &Pages{
		calendar: calendarService,
		schedule: scheduleService,
		dayview:  dayviewService,
		clock:    clock,
	}
}

// Home redirects to the calendar page.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/calendario", http.StatusFound)
}

// Calendar renders the month grid with prev/next/today navigation.
func (p *Pages) Calendar(w http.ResponseWriter, r *http.Request) {
	state := view.FromRequest(r, p.clock)

	type Page struct {
		Title      string
		State      view.State
		Grid       *calendar.MonthGrid
		PrevQuery  string
		NextQuery  string
		TodayQuery string
		Error      string
	}

	body := Page{
		Title:      "Calendário Académico",
		State:      state,
		PrevQuery:  state.PrevMonth().Query(),
		NextQuery:  state.NextMonth().Query(),
		TodayQuery: state.GoToday(p.clock).Query(),
	}

	grid, err := p.calendar.MonthGrid(r.Context(), state.Year, state.Month, calendar.DateOf(p.clock.Now()))
	if err != nil {
		log.Errorf("calendar page: %v", err)
		body.Error = calendarLoadError
	} else {
		body.Grid = grid
	}

	render(w, newTemplate("calendar.html"), body)
}

// Day renders the detail view of a single date.
func (p *Pages) Day(w http.ResponseWriter, r *http.Request) {
	state := view.FromRequest(r, p.clock)

	date, err := calendar.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	type Page struct {
		Title     string
		State     view.State
		Date      string
		Detail    *dayview.DayDetail
		BackQuery string
		Error     string
	}

	backState := state
	backState.Month = date.Month
	backState.Year = date.Year

	body := Page{
		Title:     date.DisplayLong(),
		State:     state,
		Date:      date.String(),
		BackQuery: backState.Query(),
	}

	detail, err := p.dayview.ForDate(r.Context(), date, state.SelectedYear)
	if err != nil {
		log.Errorf("day page: %v", err)
		body.Error = calendarLoadError
	} else {
		body.Detail = detail
	}

	render(w, newTemplate("day.html"), body)
}

// Schedule renders the standalone weekly grid with its year filter row.
func (p *Pages) Schedule(w http.ResponseWriter, r *http.Request) {
	state := view.FromRequest(r, p.clock)

	type Page struct {
		Title   string
		State   view.State
		Grid    *schedule.Grid
		Filters []dayview.YearFilter
		Error   string
	}

	body := Page{
		Title:   "Horário Semanal",
		State:   state,
		Filters: dayview.Filters(state.SelectedYear),
	}

	grid, err := p.schedule.Grid(r.Context(), state.SelectedYear)
	if err != nil {
		log.Errorf("schedule page: %v", err)
		body.Error = scheduleLoadError
	} else {
		body.Grid = grid
	}

	render(w, newTemplate("schedule.html"), body)
}
