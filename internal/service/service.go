// Package service implements the person use cases.
//
// The service is the only place business rules live. It never returns the domain entity;
// results are always converted to PersonDto. Writes run in a transaction obtained from
// the domain.TransactionManager, reads in a read-only one.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/callibrity/person-workshop/internal/domain"
	"github.com/callibrity/person-workshop/internal/logger"
)

// PersonService is the use case boundary consumed by the HTTP handlers.
type PersonService interface {
	CreatePerson(ctx context.Context, firstName, lastName string) (PersonDto, error)
	RetrievePersonByID(ctx context.Context, id string) (PersonDto, error)
	UpdatePerson(ctx context.Context, id, firstName, lastName string) (PersonDto, error)
	DeletePersonByID(ctx context.Context, id string) error
	ListPersons(ctx context.Context, spec PageSpec) (PageDto[PersonDto], error)
}

type DefaultPersonService struct {
	repository domain.PersonRepository
	txManager  domain.TransactionManager
}

func NewDefaultPersonService(repository domain.PersonRepository, txManager domain.TransactionManager) *DefaultPersonService {
	return &DefaultPersonService{
		repository: repository,
		txManager:  txManager,
	}
}

// CreatePerson returns a *domain.ValidationError when either name is empty.
func (s *DefaultPersonService) CreatePerson(ctx context.Context, firstName, lastName string) (PersonDto, error) {
	logger.ContextRequestLogger(ctx).Info("Creating person",
		slog.String("first_name", firstName),
		slog.String("last_name", lastName),
	)

	person, err := domain.NewPerson(firstName, lastName)
	if err != nil {
		return PersonDto{}, err
	}

	var dto PersonDto
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		saved, err := s.repository.Save(ctx, person)
		if err != nil {
			return err
		}
		dto = mapToDto(saved)
		return nil
	})
	if err != nil {
		return PersonDto{}, err
	}
	return dto, nil
}

// RetrievePersonByID returns a *PersonNotFoundError when no person has the id.
func (s *DefaultPersonService) RetrievePersonByID(ctx context.Context, id string) (PersonDto, error) {
	logger.ContextRequestLogger(ctx).Info("Retrieving person", slog.String("id", id))

	var dto PersonDto
	err := s.txManager.WithReadOnlyTransaction(ctx, func(ctx context.Context) error {
		person, err := s.findExisting(ctx, id)
		if err != nil {
			return err
		}
		dto = mapToDto(person)
		return nil
	})
	if err != nil {
		return PersonDto{}, err
	}
	return dto, nil
}

// UpdatePerson replaces both names of an existing person. Lookup, rename and save run
// in one transaction.
func (s *DefaultPersonService) UpdatePerson(ctx context.Context, id, firstName, lastName string) (PersonDto, error) {
	logger.ContextRequestLogger(ctx).Info("Updating person",
		slog.String("id", id),
		slog.String("first_name", firstName),
		slog.String("last_name", lastName),
	)

	var dto PersonDto
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		person, err := s.findExisting(ctx, id)
		if err != nil {
			return err
		}
		if err := person.Rename(firstName, lastName); err != nil {
			return err
		}
		saved, err := s.repository.Save(ctx, person)
		if err != nil {
			return err
		}
		dto = mapToDto(saved)
		return nil
	})
	if err != nil {
		return PersonDto{}, err
	}
	return dto, nil
}

// DeletePersonByID succeeds whether or not the person exists.
func (s *DefaultPersonService) DeletePersonByID(ctx context.Context, id string) error {
	logger.ContextRequestLogger(ctx).Info("Deleting person", slog.String("id", id))

	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		return s.repository.DeleteByID(ctx, id)
	})
}

func (s *DefaultPersonService) ListPersons(ctx context.Context, spec PageSpec) (PageDto[PersonDto], error) {
	logger.ContextRequestLogger(ctx).Info("Listing persons", slog.String("page_spec", spec.String()))

	req, err := pageRequestOf(spec)
	if err != nil {
		return PageDto[PersonDto]{}, err
	}

	var page domain.Page[*domain.Person]
	err = s.txManager.WithReadOnlyTransaction(ctx, func(ctx context.Context) error {
		page, err = s.repository.FindAll(ctx, req)
		return err
	})
	if err != nil {
		return PageDto[PersonDto]{}, err
	}
	return pageDtoOf(page, mapToDto), nil
}

func (s *DefaultPersonService) findExisting(ctx context.Context, id string) (*domain.Person, error) {
	person, found, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	if !found {
		return nil, &PersonNotFoundError{ID: id}
	}
	return person, nil
}
