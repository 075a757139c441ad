package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func TestEventsForDate_RangeBoundaries(t *testing.T) {
	ranged := Event{
		Type:   "exame",
		Title:  "Exames de recurso",
		Anchor: RangeAnchor{Start: date(2026, 2, 9), End: date(2026, 2, 20)},
	}
	service := NewService(NewRepositoryStub([]Event{ranged}))

	testCases := []struct {
		name    string
		date    Date
		matches bool
	}{
		{name: "on start", date: date(2026, 2, 9), matches: true},
		{name: "on end", date: date(2026, 2, 20), matches: true},
		{name: "inside", date: date(2026, 2, 14), matches: true},
		{name: "day before start", date: date(2026, 2, 8), matches: false},
		{name: "day after end", date: date(2026, 2, 21), matches: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := service.EventsForDate(context.Background(), tc.date)
			require.NoError(t, err)
			if tc.matches {
				assert.Equal(t, []Event{ranged}, events)
			} else {
				assert.Empty(t, events)
			}
		})
	}
}

func TestEventsForDate_SingleDate(t *testing.T) {
	point := Event{Type: "evento", Title: "Feira", Anchor: PointAnchor{Date: date(2026, 2, 14)}}
	service := NewService(NewRepositoryStub([]Event{point}))

	events, err := service.EventsForDate(context.Background(), date(2026, 2, 14))
	require.NoError(t, err)
	assert.Equal(t, []Event{point}, events)

	events, err = service.EventsForDate(context.Background(), date(2026, 2, 15))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventsForDate_PreservesCollectionOrder(t *testing.T) {
	first := Event{Type: "letivo", Title: "Pausa", Anchor: RangeAnchor{Start: date(2026, 2, 10), End: date(2026, 2, 18)}}
	second := Event{Type: "evento", Title: "Feira", Anchor: PointAnchor{Date: date(2026, 2, 14)}}
	third := Event{Type: "exame", Title: "Exames", Anchor: RangeAnchor{Start: date(2026, 2, 9), End: date(2026, 2, 20)}}
	service := NewService(NewRepositoryStub([]Event{first, second, third}))

	events, err := service.EventsForDate(context.Background(), date(2026, 2, 14))
	require.NoError(t, err)
	assert.Equal(t, []Event{first, second, third}, events)
}

func TestEventsForDate_SkipsEventsWithoutAnchor(t *testing.T) {
	anchorless := Event{Type: "evento", Title: "Sem data"}
	service := NewService(NewRepositoryStub([]Event{anchorless}))

	events, err := service.EventsForDate(context.Background(), date(2026, 2, 14))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPrimaryType_PriorityWinsRegardlessOfOrder(t *testing.T) {
	events := []Event{
		{Type: "evento"},
		{Type: "exame"},
		{Type: "letivo"},
	}
	assert.Equal(t, "exame", PrimaryType(events))
}

func TestPrimaryType_FallsBackToFirstUnknownType(t *testing.T) {
	events := []Event{
		{Type: "workshop"},
		{Type: "palestra"},
	}
	assert.Equal(t, "workshop", PrimaryType(events))
}

func TestPrimaryType_EmptyDay(t *testing.T) {
	assert.Equal(t, "", PrimaryType(nil))
}

func TestHasMarker(t *testing.T) {
	assert.False(t, HasMarker([]Event{{Type: "evento"}}))
	assert.True(t, HasMarker([]Event{{Type: "evento"}, {Type: "letivo", Marker: true}}))
}
