package schedule

import "context"

// RepositoryStub serves a fixed entry slice, preserving insertion order.
type RepositoryStub struct {
	entries []Entry
	err     error
}

func NewRepositoryStub(entries []Entry) *RepositoryStub {
	return &RepositoryStub{entries: entries}
}

func (r *RepositoryStub) Entries(ctx context.Context) ([]Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.entries, nil
}

func (r *RepositoryStub) SetError(err error) {
	r.err = err
}
