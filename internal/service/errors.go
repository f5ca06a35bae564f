package service

import "fmt"

// PersonNotFoundError is returned when a person id does not exist.
type PersonNotFoundError struct {
	ID string
}

func (e *PersonNotFoundError) Error() string {
	return fmt.Sprintf("Person with id %s not found", e.ID)
}
