package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"gigboard/internal/domain/message"
	"gigboard/internal/domain/profile"
	"gigboard/internal/realtime"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("connection refused")

type fakeProfileRepo struct {
	mu         sync.Mutex
	profiles   []profile.Profile
	byCategory map[uuid.UUID][]uuid.UUID
	views      map[uuid.UUID]int
	viewErr    error
	listCalls  int
	err        error
}

func newFakeProfileRepo(items ...profile.Profile) *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:   items,
		byCategory: map[uuid.UUID][]uuid.UUID{},
		views:      map[uuid.UUID]int{},
	}
}

func (f *fakeProfileRepo) ListListed(_ context.Context, categoryID *uuid.UUID) ([]profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}

	var allowed map[uuid.UUID]bool
	if categoryID != nil {
		allowed = map[uuid.UUID]bool{}
		for _, id := range f.byCategory[*categoryID] {
			allowed[id] = true
		}
	}

	out := []profile.Profile{}
	for _, p := range f.profiles {
		if p.Title == nil {
			continue
		}
		if allowed != nil && !allowed[p.ID] {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return profile.Profile{}, repository.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return profile.Profile{}, repository.ErrProfileNotFound
}

func (f *fakeProfileRepo) Update(_ context.Context, userID uuid.UUID, fl profile.Fields, avatarURL *string) (profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	for i, p := range f.profiles {
		if p.UserID != userID {
			continue
		}
		p.FullName = fl.FullName
		p.Title = fl.Title
		p.Bio = fl.Bio
		p.Location = fl.Location
		p.HourlyRate = fl.HourlyRate
		p.YearsExperience = fl.YearsExperience
		p.PortfolioURL = fl.PortfolioURL
		p.AvailabilityStatus = fl.AvailabilityStatus
		if avatarURL != nil {
			p.AvatarURL = avatarURL
		}
		f.profiles[i] = p
		return p, nil
	}
	return profile.Profile{}, repository.ErrProfileNotFound
}

func (f *fakeProfileRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.viewErr != nil {
		return f.viewErr
	}
	f.views[id]++
	return nil
}

func (f *fakeProfileRepo) Stats(_ context.Context, userID uuid.UUID) (profile.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.UserID == userID {
			return profile.Stats{ProfileViews: f.views[p.ID]}, nil
		}
	}
	return profile.Stats{}, repository.ErrProfileNotFound
}

func (f *fakeProfileRepo) viewCount(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.views[id]
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = b
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, pattern)
	c.entries = map[string][]byte{}
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Save(_ context.Context, bucket, objectPath string, r io.Reader, _ string) error {
	if s.err != nil {
		return s.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+objectPath] = b
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, bucket, objectPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, bucket+"/"+objectPath)
	return nil
}

func (s *fakeStorage) has(bucket, objectPath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[bucket+"/"+objectPath]
	return ok
}

func (s *fakeStorage) PublicURL(bucket, objectPath string) string {
	return "https://cdn.test/" + bucket + "/" + objectPath
}

type fakeMessageRepo struct {
	mu    sync.Mutex
	rows  []message.Message
	err   error
	clock time.Time
}

func (f *fakeMessageRepo) ListForUser(_ context.Context, _ uuid.UUID) ([]message.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]message.Message(nil), f.rows...), nil
}

func (f *fakeMessageRepo) Create(_ context.Context, m message.Message) (message.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return message.Message{}, f.err
	}
	f.clock = f.clock.Add(time.Second)
	m.CreatedAt = f.clock
	f.rows = append(f.rows, m)
	return m, nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, id uuid.UUID, receiverID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.rows {
		if m.ID == id && m.ReceiverID == receiverID {
			f.rows[i].ReadStatus = true
			return nil
		}
	}
	return repository.ErrMessageNotFound
}

type fakeBroker struct {
	mu        sync.Mutex
	published []message.Message
	handlers  map[uuid.UUID]realtime.Handler
	err       error
}

func (b *fakeBroker) Publish(_ context.Context, m message.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, m)
	if fn, ok := b.handlers[m.ReceiverID]; ok {
		fn(m)
	}
	return nil
}

func (b *fakeBroker) Subscribe(receiverID uuid.UUID, fn realtime.Handler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers == nil {
		b.handlers = map[uuid.UUID]realtime.Handler{}
	}
	b.handlers[receiverID] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, receiverID)
	}, nil
}

func (b *fakeBroker) Close() error { return nil }

func strPtr(s string) *string { return &s }
