package domain

import (
	"github.com/google/uuid"
)

const (
	msgFirstNameEmpty = "first name must not be empty"
	msgLastNameEmpty  = "last name must not be empty"
)

// Person is the person entity.
//
// The id is generated once by NewPerson and never changes. Two persons are the same
// entity when their ids are equal, whatever their names.
type Person struct {
	id        string
	firstName string
	lastName  string
}

// NewPerson creates a person with a freshly generated id.
// It returns a *ValidationError listing every empty name.
func NewPerson(firstName, lastName string) (*Person, error) {
	if err := ValidateNames(firstName, lastName); err != nil {
		return nil, err
	}
	return &Person{
		id:        uuid.NewString(),
		firstName: firstName,
		lastName:  lastName,
	}, nil
}

// RestorePerson rebuilds a person loaded from a store. No id is generated and no
// validation is applied.
func RestorePerson(id, firstName, lastName string) *Person {
	return &Person{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
	}
}

func (p *Person) ID() string        { return p.id }
func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string  { return p.lastName }

// Rename replaces both names. Partial renames are not supported: on a validation
// error neither name is changed.
func (p *Person) Rename(firstName, lastName string) error {
	if err := ValidateNames(firstName, lastName); err != nil {
		return err
	}
	p.firstName = firstName
	p.lastName = lastName
	return nil
}

// Validate checks the entity invariants. Repositories call it before writing.
func (p *Person) Validate() error {
	return ValidateNames(p.firstName, p.lastName)
}

// Equal reports whether p and other are the same entity.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return false
	}
	return p.id == other.id
}

// ValidateNames checks a pair of names against the person invariants without creating
// an entity.
func ValidateNames(firstName, lastName string) error {
	var violations []string
	if firstName == "" {
		violations = append(violations, msgFirstNameEmpty)
	}
	if lastName == "" {
		violations = append(violations, msgLastNameEmpty)
	}
	if len(violations) > 0 {
		return NewValidationError(violations...)
	}
	return nil
}
