package domain

import (
	"context"
	"math"
)

// SortKey is a person attribute a listing can be ordered by.
type SortKey string

const (
	SortByFirstName SortKey = "firstName"
	SortByLastName  SortKey = "lastName"
)

// ParseSortKey returns the SortKey named by s, or an *UnknownSortKeyError.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByFirstName, SortByLastName:
		return SortKey(s), nil
	}
	return "", &UnknownSortKeyError{Key: s}
}

// PageRequest selects one page of a sorted listing. Page is zero based.
type PageRequest struct {
	Page       int
	Size       int
	SortBy     SortKey
	Descending bool
}

// MaxOffset is the largest row offset a listing may start at. Stores that take 32 bit
// LIMIT/OFFSET arguments rely on it.
const MaxOffset = math.MaxInt32

// Offset is the number of rows skipped before the page starts. It saturates at
// math.MaxInt instead of overflowing.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Page is one page of results plus the total number of matching rows.
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
}

// PersonRepository persists person entities.
//
// FindByID reports an absent person with found == false and a nil error.
// DeleteByID succeeds when the id does not exist.
// Store failures are returned wrapped, they are not translated.
type PersonRepository interface {
	Save(ctx context.Context, person *Person) (*Person, error)
	FindByID(ctx context.Context, id string) (person *Person, found bool, err error)
	DeleteByID(ctx context.Context, id string) error
	FindAll(ctx context.Context, req PageRequest) (Page[*Person], error)
}

// TransactionManager runs a unit of work in a single transaction.
//
// The transaction is committed when fn returns nil and rolled back when fn returns an
// error or panics. Repositories pick the transaction up from the context passed to fn.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
