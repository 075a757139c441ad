package calendar

import (
	"context"
	"fmt"
	"time"
)

// MonthGrid is the view model of one calendar month: day-of-week headers,
// leading blanks aligning day 1 to its column, and one cell per day.
type MonthGrid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Title         string    `json:"title"`
	DayHeaders    []string  `json:"dayHeaders"`
	LeadingBlanks int       `json:"leadingBlanks"`
	Days          []DayCell `json:"days"`
}

type DayCell struct {
	Day         int    `json:"day"`
	Date        string `json:"date"`
	PrimaryType string `json:"primaryType,omitempty"`
	Marker      bool   `json:"marker,omitempty"`
	EventCount  int    `json:"eventCount"`
	Today       bool   `json:"today,omitempty"`
	Clickable   bool   `json:"clickable"`
}

// MonthGrid builds the grid for a month. A cell is clickable when the day has
// events, or on Monday to Friday regardless, so class schedules stay reachable
// on event-free weekdays.
func (s *Service) MonthGrid(ctx context.Context, year int, month time.Month, today Date) (*MonthGrid, error) {
	firstDay := Date{Year: year, Month: month, Day: 1}
	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := &MonthGrid{
		Year:          year,
		Month:         int(month),
		Title:         fmt.Sprintf("%s %d", MonthTitle(month), year),
		DayHeaders:    weekdayHeaders[:],
		LeadingBlanks: int(firstDay.Weekday()),
		Days:          make([]DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := Date{Year: year, Month: month, Day: day}
		events, err := s.EventsForDate(ctx, date)
		if err != nil {
			return nil, err
		}

		weekday := date.Weekday()
		cell := DayCell{
			Day:        day,
			Date:       date.String(),
			EventCount: len(events),
			Today:      date == today,
			Clickable:  len(events) > 0 || (weekday >= time.Monday && weekday <= time.Friday),
		}
		if len(events) > 0 {
			cell.PrimaryType = PrimaryType(events)
			cell.Marker = HasMarker(events)
		}
		grid.Days = append(grid.Days, cell)
	}

	return grid, nil
}
