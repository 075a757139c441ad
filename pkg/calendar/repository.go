package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type Repository interface {
	Events(ctx context.Context) ([]Event, error)
}

// FileRepository reads the calendar events collection from a static JSON
// file. The file is read once; a load failure is remembered and returned on
// every call, there is no retry.
type FileRepository struct {
	path string

	once   sync.Once
	events []Event
	err    error
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Events(ctx context.Context) ([]Event, error) {
	r.once.Do(func() {
		data, err := os.ReadFile(r.path)
		if err != nil {
			r.err = fmt.Errorf("failed to read calendar data %s: %w", r.path, err)
			return
		}
		var events []Event
		if err := json.Unmarshal(data, &events); err != nil {
			r.err = fmt.Errorf("failed to parse calendar data %s: %w", r.path, err)
			return
		}
		r.events = events
	})
	return r.events, r.err
}
