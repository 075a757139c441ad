package calendar

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Event is a single entry of the academic calendar. Its temporal anchor is
// either a single date or an inclusive date range; an event whose source
// record carries neither (or an unparseable one) keeps a nil Anchor and never
// matches any date.
type Event struct {
	Type        string
	Title       string
	Description string
	Tag         string
	Marker      bool
	Anchor      Anchor
}

// Anchor is the temporal anchor variant of an event.
type Anchor interface {
	Matches(d Date) bool
}

// PointAnchor anchors an event to a single date.
type PointAnchor struct {
	Date Date
}

func (a PointAnchor) Matches(d Date) bool {
	return a.Date == d
}

// RangeAnchor anchors an event to an inclusive date range.
type RangeAnchor struct {
	Start Date
	End   Date
}

func (a RangeAnchor) Matches(d Date) bool {
	return !d.Before(a.Start) && !d.After(a.End)
}

type eventJSON struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag,omitempty"`
	Marker      any    `json:"marker,omitempty"`
	Date        string `json:"date,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Type = raw.Type
	e.Title = raw.Title
	e.Description = raw.Description
	e.Tag = raw.Tag
	// Only a literal boolean counts; truthy values of other types do not.
	marker, _ := raw.Marker.(bool)
	e.Marker = marker
	e.Anchor = anchorOf(raw)

	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	raw := eventJSON{
		Type:        e.Type,
		Title:       e.Title,
		Description: e.Description,
		Tag:         e.Tag,
	}
	if e.Marker {
		raw.Marker = true
	}
	switch a := e.Anchor.(type) {
	case PointAnchor:
		raw.Date = a.Date.String()
	case RangeAnchor:
		raw.Start = a.Start.String()
		raw.End = a.End.String()
	}
	return json.Marshal(raw)
}

// anchorOf resolves the two-shape union: a single date wins over a range,
// a range needs both ends, anything else yields no anchor.
func anchorOf(raw eventJSON) Anchor {
	if raw.Date != "" {
		d, err := ParseDate(raw.Date)
		if err != nil {
			return nil
		}
		return PointAnchor{Date: d}
	}
	if raw.Start != "" && raw.End != "" {
		start, err := ParseDate(raw.Start)
		if err != nil {
			return nil
		}
		end, err := ParseDate(raw.End)
		if err != nil {
			return nil
		}
		return RangeAnchor{Start: start, End: end}
	}
	return nil
}

var eventNamespace = uuid.MustParse("9f2c1a36-5b70-4f1d-8b0a-7c4e2d9a1e58")

// UID returns a stable identifier for the event, derived from its content.
// Used as the iCalendar UID so re-exports keep the same identifiers.
func (e Event) UID() uuid.UUID {
	name := e.Type + "|" + e.Title
	switch a := e.Anchor.(type) {
	case PointAnchor:
		name += "|" + a.Date.String()
	case RangeAnchor:
		name += "|" + a.Start.String() + "|" + a.End.String()
	}
	return uuid.NewSHA1(eventNamespace, []byte(name))
}
