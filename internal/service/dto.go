package service

import "github.com/callibrity/person-workshop/internal/domain"

// PersonDto is the external view of a person.
type PersonDto struct {
	ID        string `json:"id" example:"0b6f3c1e-2f4a-4b8e-9a61-5d0a3c6f7e21"`
	FirstName string `json:"firstName" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
}

// PageDto is one page of a listing.
type PageDto[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page" example:"0"`
	Size          int   `json:"size" example:"20"`
	TotalElements int64 `json:"totalElements" example:"42"`
	TotalPages    int   `json:"totalPages" example:"3"`
}

func mapToDto(p *domain.Person) PersonDto {
	return PersonDto{
		ID:        p.ID(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
	}
}

func pageDtoOf[T, D any](page domain.Page[T], mapFn func(T) D) PageDto[D] {
	items := make([]D, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapFn(item))
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((page.TotalElements + int64(page.Size) - 1) / int64(page.Size))
	}

	return PageDto[D]{
		Items:         items,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    totalPages,
	}
}
