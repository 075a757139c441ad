package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICal_RangedEventHasExclusiveEnd(t *testing.T) {
	service := NewService(NewRepositoryStub([]Event{
		{Type: "exame", Title: "Exames", Anchor: RangeAnchor{Start: date(2026, time.February, 9), End: date(2026, time.February, 20)}},
		{Type: "evento", Title: "Sem data"},
	}))

	feed, err := service.ICal(context.Background(), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20260209")
	// Inclusive range end 20 February becomes an exclusive DTEND of the 21st.
	assert.Contains(t, feed, "DTEND;VALUE=DATE:20260221")
	// The anchorless event cannot be placed on a calendar.
	assert.NotContains(t, feed, "Sem data")
}
