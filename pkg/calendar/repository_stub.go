package calendar

import "context"

// RepositoryStub serves a fixed event slice, preserving insertion order.
type RepositoryStub struct {
	events []Event
	err    error
}

func NewRepositoryStub(events []Event) *RepositoryStub {
	return &RepositoryStub{events: events}
}

func (r *RepositoryStub) Events(ctx context.Context) ([]Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.events, nil
}

// SetError makes every subsequent call fail (for load-failure tests).
func (r *RepositoryStub) SetError(err error) {
	r.err = err
}
