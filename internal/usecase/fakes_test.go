package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strconv"
	"sync"
	"time"

	"laborlink/internal/domain/job"

	"github.com/google/uuid"
)

type fakeCache struct {
	mu        sync.Mutex
	available bool
	data      map[string][]byte
	sets      int
	deletes   []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{available: true, data: map[string][]byte{}}
}

func (f *fakeCache) Available() bool { return f.available }

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = b
	f.sets++
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, pattern)
	for k := range f.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(f.data, k)
		}
	}
	return nil
}

func (f *fakeCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	f.data[key] = []byte(value)
	return true, nil
}

func (f *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, _ := strconv.ParseInt(string(f.data[key]), 10, 64)
	n++
	f.data[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

func (f *fakeCache) GetInt64(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, _ := strconv.ParseInt(string(f.data[key]), 10, 64)
	return n, nil
}

type fakeGenerator struct {
	calls []string
	text  string
}

func (g *fakeGenerator) Generate(_ context.Context, title, category, locale string) string {
	g.calls = append(g.calls, title+"|"+category+"|"+locale)
	return g.text
}

type fakeEvent struct {
	action string
	id     uuid.UUID
}

type fakeEvents struct {
	events []fakeEvent
}

func (e *fakeEvents) NotifyJobsUpdated(action string, id uuid.UUID) {
	e.events = append(e.events, fakeEvent{action: action, id: id})
}

// countingJobs wraps a job repository and counts List calls.
type countingJobs struct {
	job.Repository
	lists int
	err   error
}

func (c *countingJobs) List(ctx context.Context) ([]job.Job, error) {
	c.lists++
	if c.err != nil {
		return nil, c.err
	}
	return c.Repository.List(ctx)
}

var errBoom = errors.New("boom")

func strPtr(s string) *string { return &s }

func validJobInput(title string) job.CreateInput {
	return job.CreateInput{
		Scope:           job.ScopeDomestic,
		Category:        "Construction",
		Type:            job.TypeDaily,
		Salary:          "₹800/day",
		Location:        "Pune, Maharashtra",
		Title:           title,
		Description:     "Site work",
		Contact:         "+91 90000 00000",
		WorkersRequired: 3,
	}
}
