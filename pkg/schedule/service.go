package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/horarium/horarium/pkg/calendar"
)

type Service struct {
	repo Repository
	// fixedSlots pins the grid rows when configured; empty means derive
	// the slots from the data.
	fixedSlots []string
}

func NewService(repo Repository, fixedSlots []string) *Service {
	return &Service{
		repo:       repo,
		fixedSlots: fixedSlots,
	}
}

// TimeGroup holds the entries of one time slot, in collection order.
type TimeGroup struct {
	Time    string  `json:"time"`
	Entries []Entry `json:"entries"`
}

// Entries returns the full collection in insertion order.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return entries, nil
}

// ForWeekday returns the weekday's entries filtered by academic year
// (AllYears keeps everything), grouped by time slot in ascending order.
// Within a group the collection order is preserved.
func (s *Service) ForWeekday(ctx context.Context, weekday time.Weekday, yearFilter int) ([]TimeGroup, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	byTime := make(map[string][]Entry)
	for _, e := range entries {
		if e.Weekday != int(weekday) {
			continue
		}
		if yearFilter != AllYears && e.Year != yearFilter {
			continue
		}
		byTime[e.Time] = append(byTime[e.Time], e)
	}

	times := make([]string, 0, len(byTime))
	for t := range byTime {
		times = append(times, t)
	}
	sort.Strings(times)

	groups := make([]TimeGroup, 0, len(times))
	for _, t := range times {
		groups = append(groups, TimeGroup{Time: t, Entries: byTime[t]})
	}
	return groups, nil
}

// Slots returns the grid's time slots: the configured fixed list when set,
// otherwise the sorted distinct times found in the data. Deriving by default
// means an entry at an undeclared time can never be silently dropped.
func (s *Service) Slots(ctx context.Context) ([]string, error) {
	if len(s.fixedSlots) > 0 {
		return s.fixedSlots, nil
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var slots []string
	for _, e := range entries {
		if !seen[e.Time] {
			seen[e.Time] = true
			slots = append(slots, e.Time)
		}
	}
	sort.Strings(slots)
	return slots, nil
}

// Grid is the standalone weekly view: one row per time slot, one column per
// weekday Monday through Friday.
type Grid struct {
	Slots     int       `json:"slots"`
	DayTitles []string  `json:"dayTitles"`
	Rows      []GridRow `json:"rows"`
}

type GridRow struct {
	Time  string     `json:"time"`
	Cells []GridCell `json:"cells"`
}

type GridCell struct {
	Weekday int         `json:"weekday"`
	Entries []GridEntry `json:"entries"`
}

// GridEntry is an Entry with its year accent color resolved for display.
type GridEntry struct {
	Entry
	Color string `json:"color"`
}

// Grid builds the weekly grid for a year filter. Simultaneous entries in one
// cell stack in collection order.
func (s *Service) Grid(ctx context.Context, yearFilter int) (*Grid, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := s.Slots(ctx)
	if err != nil {
		return nil, err
	}

	grid := &Grid{
		Slots: len(slots),
		Rows:  make([]GridRow, 0, len(slots)),
	}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		grid.DayTitles = append(grid.DayTitles, calendar.WeekdayTitle(wd))
	}

	for _, slot := range slots {
		row := GridRow{Time: slot}
		for wd := time.Monday; wd <= time.Friday; wd++ {
			cell := GridCell{Weekday: int(wd), Entries: []GridEntry{}}
			for _, e := range entries {
				if e.Weekday != int(wd) || e.Time != slot {
					continue
				}
				if yearFilter != AllYears && e.Year != yearFilter {
					continue
				}
				cell.Entries = append(cell.Entries, GridEntry{Entry: e, Color: YearColor(e.Year)})
			}
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid, nil
}
