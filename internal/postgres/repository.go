// Package postgres implements the person repository and transaction manager on PostgreSQL.
//
// The persons table is created by the goose migrations in sql/schema; the queries are
// the sqlc generated ones in internal/database.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/callibrity/person-workshop/internal/database"
	"github.com/callibrity/person-workshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

// queries uses the transaction started by TxManager when there is one on the context.
func (r *PersonRepository) queries(ctx context.Context) *database.Queries {
	q := database.New(r.pool)
	if tx, ok := txFromContext(ctx); ok {
		return q.WithTx(tx)
	}
	return q
}

// Save validates the entity and upserts it by id.
func (r *PersonRepository) Save(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if err := person.Validate(); err != nil {
		return nil, err
	}

	row, err := r.queries(ctx).UpsertPerson(ctx, database.UpsertPersonParams{
		ID:        person.ID(),
		FirstName: person.FirstName(),
		LastName:  person.LastName(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return nil, fmt.Errorf("failed to save person %s (sqlstate %s): %w", person.ID(), pgErr.Code, err)
		}
		return nil, fmt.Errorf("failed to save person %s: %w", person.ID(), err)
	}

	return toDomain(row), nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id string) (*domain.Person, bool, error) {
	row, err := r.queries(ctx).GetPersonByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find person %s: %w", id, err)
	}
	return toDomain(row), true, nil
}

func (r *PersonRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.queries(ctx).DeletePersonByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete person %s: %w", id, err)
	}
	return nil
}

func (r *PersonRepository) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[*domain.Person], error) {
	key, err := domain.ParseSortKey(string(req.SortBy))
	if err != nil {
		return domain.Page[*domain.Person]{}, err
	}

	q := r.queries(ctx)

	total, err := q.CountPersons(ctx)
	if err != nil {
		return domain.Page[*domain.Person]{}, fmt.Errorf("failed to count persons: %w", err)
	}

	items := []*domain.Person{}

	// LIMIT/OFFSET are int32; a page past domain.MaxOffset is empty
	offset := req.Offset()
	if req.Size > 0 && req.Size <= math.MaxInt32 && offset <= domain.MaxOffset {
		rows, err := q.ListPersons(ctx, database.ListPersonsParams{
			SortBy:     string(key),
			Descending: req.Descending,
			PageSize:   int32(req.Size),
			PageOffset: int32(offset),
		})
		if err != nil {
			return domain.Page[*domain.Person]{}, fmt.Errorf("failed to list persons: %w", err)
		}
		for _, row := range rows {
			items = append(items, toDomain(row))
		}
	}

	return domain.Page[*domain.Person]{
		Items:         items,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
	}, nil
}

// IsDatabaseRunning is used by the readiness probe.
func (r *PersonRepository) IsDatabaseRunning(ctx context.Context) error {
	_, err := database.New(r.pool).IsDatabaseRunning(ctx)
	return err
}

func toDomain(row database.Person) *domain.Person {
	return domain.RestorePerson(row.ID, row.FirstName, row.LastName)
}
