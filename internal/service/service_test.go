package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/callibrity/person-workshop/internal/domain"
	"github.com/callibrity/person-workshop/internal/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPersonRepository struct {
	mock.Mock
}

func (m *mockPersonRepository) Save(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	args := m.Called(ctx, person)
	switch ret := args.Get(0).(type) {
	case func(context.Context, *domain.Person) *domain.Person:
		return ret(ctx, person), args.Error(1)
	case *domain.Person:
		return ret, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonRepository) FindByID(ctx context.Context, id string) (*domain.Person, bool, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Person)
	return p, args.Bool(1), args.Error(2)
}

func (m *mockPersonRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPersonRepository) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[*domain.Person], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Page[*domain.Person]), args.Error(1)
}

// recordingTxManager counts transactions so tests can check writes are wrapped.
type recordingTxManager struct {
	writes int
	reads  int
}

func (r *recordingTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.writes++
	return fn(ctx)
}

func (r *recordingTxManager) WithReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.reads++
	return fn(ctx)
}

func TestCreatePerson(t *testing.T) {
	repo := &mockPersonRepository{}
	tx := &recordingTxManager{}
	var saved *domain.Person
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Person")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Person) }).
		Return(func(ctx context.Context, p *domain.Person) *domain.Person { return p }, nil)

	svc := NewDefaultPersonService(repo, tx)

	dto, err := svc.CreatePerson(context.Background(), "John", "Doe")
	require.NoError(t, err)

	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "John", dto.FirstName)
	assert.Equal(t, "Doe", dto.LastName)
	assert.Equal(t, 1, tx.writes)

	require.NotNil(t, saved)
	assert.Equal(t, dto.ID, saved.ID())
	assert.Equal(t, "John", saved.FirstName())
	assert.Equal(t, "Doe", saved.LastName())
	repo.AssertExpectations(t)
}

func TestCreatePersonValidationFailure(t *testing.T) {
	repo := &mockPersonRepository{}
	svc := NewDefaultPersonService(repo, &recordingTxManager{})

	_, err := svc.CreatePerson(context.Background(), "", "Doe")

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected *domain.ValidationError, got %T", err)
	assert.Contains(t, err.Error(), "first name must not be empty")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRetrievePersonByID(t *testing.T) {
	person, err := domain.NewPerson("Jane", "Doe")
	require.NoError(t, err)

	repo := &mockPersonRepository{}
	repo.On("FindByID", mock.Anything, person.ID()).Return(person, true, nil)
	tx := &recordingTxManager{}
	svc := NewDefaultPersonService(repo, tx)

	dto, err := svc.RetrievePersonByID(context.Background(), person.ID())
	require.NoError(t, err)

	assert.Equal(t, PersonDto{ID: person.ID(), FirstName: "Jane", LastName: "Doe"}, dto)
	assert.Equal(t, 1, tx.reads)
	assert.Equal(t, 0, tx.writes)
	repo.AssertExpectations(t)
}

func TestRetrievePersonByIDNotFound(t *testing.T) {
	repo := &mockPersonRepository{}
	repo.On("FindByID", mock.Anything, "non-existent-id").Return(nil, false, nil)
	svc := NewDefaultPersonService(repo, &recordingTxManager{})

	_, err := svc.RetrievePersonByID(context.Background(), "non-existent-id")

	var notFound *PersonNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "non-existent-id", notFound.ID)
	assert.EqualError(t, err, "Person with id non-existent-id not found")
}

func TestRetrievePersonByIDStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &mockPersonRepository{}
	repo.On("FindByID", mock.Anything, "1").Return(nil, false, storeErr)
	svc := NewDefaultPersonService(repo, &recordingTxManager{})

	_, err := svc.RetrievePersonByID(context.Background(), "1")

	assert.ErrorIs(t, err, storeErr)
	var notFound *PersonNotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestUpdatePerson(t *testing.T) {
	person, err := domain.NewPerson("John", "Doe")
	require.NoError(t, err)

	repo := &mockPersonRepository{}
	repo.On("FindByID", mock.Anything, person.ID()).Return(person, true, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Person")).
		Return(func(ctx context.Context, p *domain.Person) *domain.Person { return p }, nil)
	tx := &recordingTxManager{}
	svc := NewDefaultPersonService(repo, tx)

	dto, err := svc.UpdatePerson(context.Background(), person.ID(), "Jane", "Doe")
	require.NoError(t, err)

	assert.Equal(t, person.ID(), dto.ID)
	assert.Equal(t, "Jane", dto.FirstName)
	assert.Equal(t, "Doe", dto.LastName)
	assert.Equal(t, 1, tx.writes, "lookup, rename and save share one transaction")
	repo.AssertExpectations(t)
}

func TestUpdatePersonNotFound(t *testing.T) {
	repo := &mockPersonRepository{}
	repo.On("FindByID", mock.Anything, "missing").Return(nil, false, nil)
	svc := NewDefaultPersonService(repo, &recordingTxManager{})

	_, err := svc.UpdatePerson(context.Background(), "missing", "Jane", "Doe")

	var notFound *PersonNotFoundError
	require.True(t, errors.As(err, &notFound))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdatePersonValidationFailure(t *testing.T) {
	person, err := domain.NewPerson("John", "Doe")
	require.NoError(t, err)

	repo := &mockPersonRepository{}
	repo.On("FindByID", mock.Anything, person.ID()).Return(person, true, nil)
	svc := NewDefaultPersonService(repo, &recordingTxManager{})

	_, err = svc.UpdatePerson(context.Background(), person.ID(), "Jane", "")

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "John", person.FirstName(), "a rejected update must not touch the entity")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeletePersonByID(t *testing.T) {
	repo := &mockPersonRepository{}
	repo.On("DeleteByID", mock.Anything, "12345").Return(nil)
	tx := &recordingTxManager{}
	svc := NewDefaultPersonService(repo, tx)

	require.NoError(t, svc.DeletePersonByID(context.Background(), "12345"))
	assert.Equal(t, 1, tx.writes)
	repo.AssertExpectations(t)
}

func TestListPersons(t *testing.T) {
	p1 := domain.RestorePerson("1", "Bob", "Adams")
	p2 := domain.RestorePerson("2", "Charlie", "Brown")

	repo := &mockPersonRepository{}
	repo.On("FindAll", mock.Anything, domain.PageRequest{Page: 0, Size: 2, SortBy: domain.SortByLastName}).
		Return(domain.Page[*domain.Person]{Items: []*domain.Person{p1, p2}, Page: 0, Size: 2, TotalElements: 5}, nil)
	svc := NewDefaultPersonService(repo, &recordingTxManager{})

	page, err := svc.ListPersons(context.Background(), PageSpec{Size: 2})
	require.NoError(t, err)

	assert.Equal(t, []PersonDto{
		{ID: "1", FirstName: "Bob", LastName: "Adams"},
		{ID: "2", FirstName: "Charlie", LastName: "Brown"},
	}, page.Items)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.EqualValues(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	repo.AssertExpectations(t)
}

func TestListPersonsAcceptsLastAddressablePage(t *testing.T) {
	lastPage := domain.MaxOffset / 20
	req := domain.PageRequest{Page: lastPage, Size: 20, SortBy: domain.SortByLastName}

	repo := &mockPersonRepository{}
	repo.On("FindAll", mock.Anything, req).
		Return(domain.Page[*domain.Person]{Items: []*domain.Person{}, Page: lastPage, Size: 20, TotalElements: 1}, nil)
	svc := NewDefaultPersonService(repo, &recordingTxManager{})

	page, err := svc.ListPersons(context.Background(), PageSpec{Page: lastPage, Size: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.LessOrEqual(t, req.Offset(), domain.MaxOffset)
	repo.AssertExpectations(t)
}

func TestListPersonsRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name        string
		spec        PageSpec
		wantSortKey string
		wantDetail  string
	}{
		{name: "unknown sort key", spec: PageSpec{SortBy: "age"}, wantSortKey: "age"},
		{name: "negative page", spec: PageSpec{Page: -1}, wantDetail: "page must not be negative"},
		{name: "page past the maximum offset", spec: PageSpec{Page: 214748365, Size: 20}, wantDetail: "page must not exceed 107374182 for size 20"},
		{name: "page whose offset overflows int", spec: PageSpec{Page: math.MaxInt}, wantDetail: "page must not exceed"},
		{name: "size too large", spec: PageSpec{Size: 1000}, wantDetail: "size must be between 1 and 100"},
		{name: "bad direction", spec: PageSpec{SortDir: "sideways"}, wantDetail: "sort direction must be asc or desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPersonRepository{}
			svc := NewDefaultPersonService(repo, &recordingTxManager{})

			_, err := svc.ListPersons(context.Background(), tt.spec)
			require.Error(t, err)

			if tt.wantSortKey != "" {
				var sortErr *domain.UnknownSortKeyError
				require.True(t, errors.As(err, &sortErr))
				assert.Equal(t, tt.wantSortKey, sortErr.Key)
			} else {
				var validationErr *domain.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Contains(t, err.Error(), tt.wantDetail)
			}
			repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
		})
	}
}

// The properties below run against the in-memory repository rather than a mock.

func TestServiceRoundTripWithMemoryRepository(t *testing.T) {
	ctx := context.Background()
	svc := NewDefaultPersonService(memory.NewPersonRepository(), memory.NoopTxManager{})

	created, err := svc.CreatePerson(ctx, "John", "Doe")
	require.NoError(t, err)

	retrieved, err := svc.RetrievePersonByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, retrieved)

	_, err = svc.UpdatePerson(ctx, created.ID, "Jane", "Roe")
	require.NoError(t, err)
	retrieved, err = svc.RetrievePersonByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, PersonDto{ID: created.ID, FirstName: "Jane", LastName: "Roe"}, retrieved)

	require.NoError(t, svc.DeletePersonByID(ctx, created.ID))
	require.NoError(t, svc.DeletePersonByID(ctx, created.ID), "delete is idempotent")

	_, err = svc.RetrievePersonByID(ctx, created.ID)
	var notFound *PersonNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
