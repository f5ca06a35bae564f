package service

import (
	"fmt"
	"strings"

	"github.com/callibrity/person-workshop/internal/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultSortBy   = string(domain.SortByLastName)

	SortAscending  = "asc"
	SortDescending = "desc"
)

// PageSpec is the caller's paging and sorting request. Zero values select the defaults
// (first page, DefaultPageSize items, sorted by last name ascending).
type PageSpec struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

func (s PageSpec) String() string {
	return fmt.Sprintf("page=%d size=%d sortBy=%s sortDir=%s", s.Page, s.Size, s.SortBy, s.SortDir)
}

// pageRequestOf fills in the defaults, then validates the result.
//
// An unsupported sort key is reported as *domain.UnknownSortKeyError; the remaining
// problems are collected into one *domain.ValidationError.
func pageRequestOf(spec PageSpec) (domain.PageRequest, error) {
	if spec.Size == 0 {
		spec.Size = DefaultPageSize
	}
	if spec.SortBy == "" {
		spec.SortBy = DefaultSortBy
	}
	if spec.SortDir == "" {
		spec.SortDir = SortAscending
	}

	key, err := domain.ParseSortKey(spec.SortBy)
	if err != nil {
		return domain.PageRequest{}, err
	}

	var violations []string
	if spec.Page < 0 {
		violations = append(violations, "page must not be negative")
	}
	if spec.Size < 1 || spec.Size > MaxPageSize {
		violations = append(violations, fmt.Sprintf("size must be between 1 and %d", MaxPageSize))
	} else if maxPage := domain.MaxOffset / spec.Size; spec.Page > maxPage {
		violations = append(violations, fmt.Sprintf("page must not exceed %d for size %d", maxPage, spec.Size))
	}
	dir := strings.ToLower(spec.SortDir)
	if dir != SortAscending && dir != SortDescending {
		violations = append(violations, "sort direction must be asc or desc")
	}
	if len(violations) > 0 {
		return domain.PageRequest{}, domain.NewValidationError(violations...)
	}

	return domain.PageRequest{
		Page:       spec.Page,
		Size:       spec.Size,
		SortBy:     key,
		Descending: dir == SortDescending,
	}, nil
}
