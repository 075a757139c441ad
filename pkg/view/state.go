// Package view carries the navigation state of the calendar pages: the month
// grid anchor and the single global academic year filter. Transitions are
// pure; the state itself lives in the request URL.
package view

import (
	"net/http"
	"strconv"
	"time"

	"github.com/horarium/horarium/internal/utils"
)

type State struct {
	Month time.Month
	Year  int
	// SelectedYear filters schedule display: 0 selects all academic years.
	SelectedYear int
}

// Current returns the state anchored at the clock's current month, with the
// filter open.
func Current(clock utils.Clock) State {
	now := clock.Now()
	return State{Month: now.Month(), Year: now.Year()}
}

// PrevMonth moves one month back, rolling January into December of the
// previous year. The month value wraps, it is never clamped.
func (s State) PrevMonth() State {
	s.Month--
	if s.Month < time.January {
		s.Month = time.December
		s.Year--
	}
	return s
}

// NextMonth moves one month forward, rolling December into January of the
// next year.
func (s State) NextMonth() State {
	s.Month++
	if s.Month > time.December {
		s.Month = time.January
		s.Year++
	}
	return s
}

// GoToday re-anchors the grid at the current month, keeping the year filter.
func (s State) GoToday(clock utils.Clock) State {
	now := clock.Now()
	s.Month = now.Month()
	s.Year = now.Year()
	return s
}

// WithSelectedYear returns the state with the academic year filter replaced.
func (s State) WithSelectedYear(year int) State {
	s.SelectedYear = year
	return s
}

// FromRequest reads month, year and grade query parameters, falling back to
// the current month and the open filter for anything absent or invalid.
func FromRequest(r *http.Request, clock utils.Clock) State {
	s := Current(clock)

	if month, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && month >= 1 && month <= 12 {
		if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && year > 0 {
			s.Month = time.Month(month)
			s.Year = year
		}
	}
	if grade, err := strconv.Atoi(r.URL.Query().Get("grade")); err == nil && grade >= 0 && grade <= 5 {
		s.SelectedYear = grade
	}

	return s
}

// Query renders the state back into a URL query string.
func (s State) Query() string {
	q := "month=" + strconv.Itoa(int(s.Month)) + "&year=" + strconv.Itoa(s.Year)
	if s.SelectedYear != 0 {
		q += "&grade=" + strconv.Itoa(s.SelectedYear)
	}
	return q
}
