// Package dayview builds the detail view of a single date: the matched
// calendar events plus, on weekdays, the class schedule of that weekday.
package dayview

import (
	"github.com/horarium/horarium/pkg/schedule"
)

// DayDetail is the view model of one selected date.
type DayDetail struct {
	Date     string           `json:"date"`
	Title    string           `json:"title"`
	Events   []EventBlock     `json:"events"`
	Schedule *ScheduleSection `json:"schedule,omitempty"`
}

// EventBlock is one event rendered in the detail view.
type EventBlock struct {
	Type        string `json:"type"`
	TypeLabel   string `json:"typeLabel"`
	Tag         string `json:"tag,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Range holds the "dd/mm/yyyy até dd/mm/yyyy" line for ranged events.
	Range string `json:"range,omitempty"`
}

// ScheduleSection is present only when the date falls on Monday to Friday.
type ScheduleSection struct {
	WeekdayName string               `json:"weekdayName"`
	Filters     []YearFilter         `json:"filters"`
	Groups      []schedule.TimeGroup `json:"groups"`
}

// YearFilter is one filter control: Todos or an academic year.
type YearFilter struct {
	Year     int    `json:"year"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}
