package calendar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventUnmarshal_AnchorShapes(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want Anchor
	}{
		{
			name: "single date",
			json: `{"type":"evento","title":"Feira","description":"","date":"2026-02-14"}`,
			want: PointAnchor{Date: Date{2026, 2, 14}},
		},
		{
			name: "date range",
			json: `{"type":"exame","title":"Exames","description":"","start":"2026-02-09","end":"2026-02-20"}`,
			want: RangeAnchor{Start: Date{2026, 2, 9}, End: Date{2026, 2, 20}},
		},
		{
			name: "no temporal fields",
			json: `{"type":"evento","title":"Sem data","description":""}`,
			want: nil,
		},
		{
			name: "start without end",
			json: `{"type":"evento","title":"Meio intervalo","description":"","start":"2026-02-09"}`,
			want: nil,
		},
		{
			name: "unparseable date",
			json: `{"type":"evento","title":"Data inválida","description":"","date":"14/02/2026"}`,
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var e Event
			require.NoError(t, json.Unmarshal([]byte(tc.json), &e))
			assert.Equal(t, tc.want, e.Anchor)
		})
	}
}

func TestEventUnmarshal_MarkerIsStrictBoolean(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want bool
	}{
		{name: "true", json: `{"type":"letivo","title":"Início","marker":true,"date":"2026-02-02"}`, want: true},
		{name: "absent", json: `{"type":"letivo","title":"Início","date":"2026-02-02"}`, want: false},
		{name: "number one", json: `{"type":"letivo","title":"Início","marker":1,"date":"2026-02-02"}`, want: false},
		{name: "string true", json: `{"type":"letivo","title":"Início","marker":"true","date":"2026-02-02"}`, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var e Event
			require.NoError(t, json.Unmarshal([]byte(tc.json), &e))
			assert.Equal(t, tc.want, e.Marker)
		})
	}
}

func TestEventMarshal_RoundTripsAnchor(t *testing.T) {
	e := Event{
		Type:        "exame",
		Title:       "Exames",
		Description: "Época de recurso",
		Anchor:      RangeAnchor{Start: Date{2026, 2, 9}, End: Date{2026, 2, 20}},
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"exame","title":"Exames","description":"Época de recurso","start":"2026-02-09","end":"2026-02-20"}`, string(data))
}

func TestEventUID_IsStable(t *testing.T) {
	e := Event{Type: "evento", Title: "Feira", Anchor: PointAnchor{Date: Date{2026, 2, 14}}}
	other := Event{Type: "evento", Title: "Feira", Anchor: PointAnchor{Date: Date{2026, 2, 14}}}

	assert.Equal(t, e.UID(), other.UID())
	assert.NotEqual(t, e.UID(), Event{Type: "evento", Title: "Feira", Anchor: PointAnchor{Date: Date{2026, 2, 15}}}.UID())
}
