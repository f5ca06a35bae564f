package metrics

import (
	"context"
	"time"

	"github.com/callibrity/person-workshop/internal/service"
)

// instrumentedPersonService records a call counter and latency histogram for every
// operation of the wrapped service.
type instrumentedPersonService struct {
	next service.PersonService
}

// InstrumentPersonService decorates next with Prometheus metrics.
func InstrumentPersonService(next service.PersonService) service.PersonService {
	return &instrumentedPersonService{next: next}
}

func (s *instrumentedPersonService) CreatePerson(ctx context.Context, firstName, lastName string) (dto service.PersonDto, err error) {
	defer observe("create", time.Now(), &err)
	return s.next.CreatePerson(ctx, firstName, lastName)
}

func (s *instrumentedPersonService) RetrievePersonByID(ctx context.Context, id string) (dto service.PersonDto, err error) {
	defer observe("retrieve", time.Now(), &err)
	return s.next.RetrievePersonByID(ctx, id)
}

func (s *instrumentedPersonService) UpdatePerson(ctx context.Context, id, firstName, lastName string) (dto service.PersonDto, err error) {
	defer observe("update", time.Now(), &err)
	return s.next.UpdatePerson(ctx, id, firstName, lastName)
}

func (s *instrumentedPersonService) DeletePersonByID(ctx context.Context, id string) (err error) {
	defer observe("delete", time.Now(), &err)
	return s.next.DeletePersonByID(ctx, id)
}

func (s *instrumentedPersonService) ListPersons(ctx context.Context, spec service.PageSpec) (page service.PageDto[service.PersonDto], err error) {
	defer observe("list", time.Now(), &err)
	return s.next.ListPersons(ctx, spec)
}

func observe(operation string, start time.Time, err *error) {
	RecordServiceCall(operation, time.Since(start), *err)
}
