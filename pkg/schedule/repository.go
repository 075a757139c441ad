package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type Repository interface {
	Entries(ctx context.Context) ([]Entry, error)
}

// FileRepository reads the schedule collection from a static JSON file, once.
type FileRepository struct {
	path string

	once    sync.Once
	entries []Entry
	err     error
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Entries(ctx context.Context) ([]Entry, error) {
	r.once.Do(func() {
		data, err := os.ReadFile(r.path)
		if err != nil {
			r.err = fmt.Errorf("failed to read schedule data %s: %w", r.path, err)
			return
		}
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			r.err = fmt.Errorf("failed to parse schedule data %s: %w", r.path, err)
			return
		}
		r.entries = entries
	})
	return r.entries, r.err
}
