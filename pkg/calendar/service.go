package calendar

import (
	"context"
	"fmt"
)

// typePriority decides which single category represents a day holding events
// of several types. The order is a product decision and must stay as is.
var typePriority = []string{"exame", "resultado", "matricula", "docente", "letivo", "evento"}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// Events returns the full collection in insertion order.
func (s *Service) Events(ctx context.Context) ([]Event, error) {
	events, err := s.repo.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return events, nil
}

// EventsForDate returns the events matching d, as an order-preserving
// subsequence of the collection. Events without an anchor never match.
func (s *Service) EventsForDate(ctx context.Context, d Date) ([]Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	var matched []Event
	for _, e := range events {
		if e.Anchor != nil && e.Anchor.Matches(d) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// PrimaryType resolves the dominant category of a day's events: the first
// priority type present, else the first event's type, else "".
func PrimaryType(events []Event) string {
	for _, t := range typePriority {
		for _, e := range events {
			if e.Type == t {
				return t
			}
		}
	}
	if len(events) > 0 {
		return events[0].Type
	}
	return ""
}

// HasMarker reports whether any of the day's events is flagged for emphasis.
func HasMarker(events []Event) bool {
	for _, e := range events {
		if e.Marker {
			return true
		}
	}
	return false
}
