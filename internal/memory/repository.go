// Package memory provides an in-process PersonRepository backed by a map.
//
// It is intended for local development and tests (REPOSITORY=memory). Data is lost on
// restart and there are no transactional guarantees.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/callibrity/person-workshop/internal/domain"
)

// PersonRepository stores persons keyed by id.
type PersonRepository struct {
	mu      sync.RWMutex
	persons map[string]*domain.Person
}

func NewPersonRepository() *PersonRepository {
	return &PersonRepository{
		persons: make(map[string]*domain.Person),
	}
}

// Save inserts or replaces the person with the same id.
//
// The store keeps its own copies, so callers may mutate the persons they pass in or get
// back without holding the lock.
func (r *PersonRepository) Save(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if err := person.Validate(); err != nil {
		return nil, err
	}

	stored := clone(person)
	r.mu.Lock()
	r.persons[stored.ID()] = stored
	r.mu.Unlock()
	return clone(stored), nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id string) (*domain.Person, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	person, ok := r.persons[id]
	if !ok {
		return nil, false, nil
	}
	return clone(person), true, nil
}

func (r *PersonRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.persons, id)
	return nil
}

// FindAll sorts a snapshot of the stored persons and returns the requested page.
func (r *PersonRepository) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[*domain.Person], error) {
	key, err := domain.ParseSortKey(string(req.SortBy))
	if err != nil {
		return domain.Page[*domain.Person]{}, err
	}

	r.mu.RLock()
	all := make([]*domain.Person, 0, len(r.persons))
	for _, p := range r.persons {
		all = append(all, clone(p))
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		c := strings.Compare(sortValue(all[i], key), sortValue(all[j], key))
		if c == 0 {
			// ties are always broken by id ascending so pages are stable
			return all[i].ID() < all[j].ID()
		}
		if req.Descending {
			return c > 0
		}
		return c < 0
	})

	page := domain.Page[*domain.Person]{
		Items:         []*domain.Person{},
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: int64(len(all)),
	}

	start := req.Offset()
	if start >= len(all) || req.Size <= 0 {
		return page, nil
	}
	end := start + min(req.Size, len(all)-start)
	page.Items = all[start:end]
	return page, nil
}

func clone(p *domain.Person) *domain.Person {
	return domain.RestorePerson(p.ID(), p.FirstName(), p.LastName())
}

func sortValue(p *domain.Person, key domain.SortKey) string {
	if key == domain.SortByFirstName {
		return p.FirstName()
	}
	return p.LastName()
}

// NoopTxManager satisfies domain.TransactionManager for the memory store by running the
// unit of work directly.
type NoopTxManager struct{}

func (NoopTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (NoopTxManager) WithReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
