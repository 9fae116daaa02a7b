package infra

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
)

var ErrNotFound = errors.New("not_found")

type memServiceRepo struct {
	mu    sync.RWMutex
	items map[string]*domain.Service
}

func NewMemServiceRepo() domain.ServiceRepo {
	return &memServiceRepo{items: make(map[string]*domain.Service)}
}

func (r *memServiceRepo) Create(s domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Slug == s.Slug {
			return nil, errors.New("slug_taken")
		}
	}
	s.ID = uuid.New().String()
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	cp := s
	r.items[s.ID] = &cp
	return &s, nil
}

func (r *memServiceRepo) Update(s domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[s.ID]
	if !ok {
		return ErrNotFound
	}
	s.CreatedAt = cur.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	cp := s
	r.items[s.ID] = &cp
	return nil
}

func (r *memServiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memServiceRepo) GetBySlug(slug string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.Slug == slug {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memServiceRepo) List(publishedOnly bool) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Service, 0, len(r.items))
	for _, it := range r.items {
		if publishedOnly && !it.Published {
			continue
		}
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

type memContactRepo struct {
	mu    sync.Mutex
	items []domain.ContactSubmission
}

func NewMemContactRepo() domain.ContactRepo {
	return &memContactRepo{}
}

func (r *memContactRepo) Create(s domain.ContactSubmission) (*domain.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.New().String()
	s.CreatedAt = time.Now().UTC()
	r.items = append(r.items, s)
	cp := s
	return &cp, nil
}

func (r *memContactRepo) List(unresolvedOnly bool) ([]domain.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ContactSubmission, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		s := r.items[i]
		if unresolvedOnly && s.ResolvedAt != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memContactRepo) Resolve(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			if r.items[i].ResolvedAt == nil {
				t := at
				r.items[i].ResolvedAt = &t
			}
			return nil
		}
	}
	return ErrNotFound
}
