package calendar

import (
	"context"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ICal renders the full event collection as an iCalendar feed. Events are
// emitted as all-day entries; ranged events use an exclusive DTEND one day
// past the inclusive range end, as the format requires.
func (s *Service) ICal(ctx context.Context, now time.Time) (string, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//horarium//calendario-academico//PT")

	for _, e := range events {
		var start, end Date
		switch a := e.Anchor.(type) {
		case PointAnchor:
			start, end = a.Date, a.Date
		case RangeAnchor:
			start, end = a.Start, a.End
		default:
			// No anchor, nothing to place on a calendar.
			continue
		}

		ev := cal.AddEvent(e.UID().String())
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(start.Time())
		ev.SetAllDayEndAt(end.AddDays(1).Time())
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
	}

	return cal.Serialize(), nil
}
