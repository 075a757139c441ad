package app

import (
	"github.com/horarium/horarium/internal/config"
	"github.com/horarium/horarium/internal/utils"
	"github.com/horarium/horarium/internal/web"
	"github.com/horarium/horarium/pkg/calendar"
	"github.com/horarium/horarium/pkg/dayview"
	"github.com/horarium/horarium/pkg/schedule"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	CalendarRepo    calendar.Repository
	CalendarService *calendar.Service
	CalendarHandler *calendar.Handler

	ScheduleRepo    schedule.Repository
	ScheduleService *schedule.Service
	ScheduleHandler *schedule.Handler

	DayViewService *dayview.Service
	DayViewHandler *dayview.Handler

	Pages *web.Pages

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}

	deps.CalendarRepo = calendar.NewFileRepository(cfg.Data.Calendar)
	deps.CalendarService = calendar.NewService(deps.CalendarRepo)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarService, deps.Clock)

	deps.ScheduleRepo = schedule.NewFileRepository(cfg.Data.Schedule)
	deps.ScheduleService = schedule.NewService(deps.ScheduleRepo, cfg.Schedule.Slots)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService)

	deps.DayViewService = dayview.NewService(deps.CalendarService, deps.ScheduleService)
	deps.DayViewHandler = dayview.NewHandler(deps.DayViewService)

	deps.Pages = web.NewPages(deps.CalendarService, deps.ScheduleService, deps.DayViewService, deps.Clock)

	return deps
}
