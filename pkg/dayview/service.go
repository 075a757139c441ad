package dayview

import (
	"context"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/horarium/horarium/pkg/calendar"
	"github.com/horarium/horarium/pkg/schedule"
)

type Service struct {
	calendar *calendar.Service
	schedule *schedule.Service
}

func NewService(calendarService *calendar.Service, scheduleService *schedule.Service) *Service {
	return &Service{
		calendar: calendarService,
		schedule: scheduleService,
	}
}

// ForDate builds the detail view for a date under the given academic year
// filter. The view always opens: a day without events and without classes
// still gets its header with empty sections.
func (s *Service) ForDate(ctx context.Context, date calendar.Date, yearFilter int) (*DayDetail, error) {
	events, err := s.calendar.EventsForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to match events: %w", err)
	}

	detail := &DayDetail{
		Date:   date.String(),
		Title:  date.DisplayLong(),
		Events: make([]EventBlock, 0, len(events)),
	}
	for _, e := range events {
		detail.Events = append(detail.Events, eventBlock(e))
	}

	weekday := date.Weekday()
	if weekday >= time.Monday && weekday <= time.Friday {
		groups, err := s.schedule.ForWeekday(ctx, weekday, yearFilter)
		if err != nil {
			return nil, fmt.Errorf("failed to load weekday schedule: %w", err)
		}
		detail.Schedule = &ScheduleSection{
			WeekdayName: calendar.WeekdayName(weekday),
			Filters:     Filters(yearFilter),
			Groups:      groups,
		}
	}

	return detail, nil
}

func eventBlock(e calendar.Event) EventBlock {
	block := EventBlock{
		Type:        e.Type,
		TypeLabel:   capitalize(e.Type),
		Tag:         e.Tag,
		Title:       e.Title,
		Description: e.Description,
	}
	if a, ok := e.Anchor.(calendar.RangeAnchor); ok {
		block.Range = fmt.Sprintf("%s até %s", a.Start.DisplayShort(), a.End.DisplayShort())
	}
	return block
}

// Filters builds the year filter controls with the selected one marked. The
// same control row appears in the day detail and next to the standalone grid.
func Filters(selected int) []YearFilter {
	filters := []YearFilter{{Year: schedule.AllYears, Label: "Todos", Selected: selected == schedule.AllYears}}
	for year := 1; year <= 5; year++ {
		filters = append(filters, YearFilter{
			Year:     year,
			Label:    fmt.Sprintf("%dº", year),
			Selected: selected == year,
		})
	}
	return filters
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
