package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Run("assigns a unique id", func(t *testing.T) {
		person, err := NewPerson("John", "Doe")
		require.NoError(t, err)

		assert.NotEmpty(t, person.ID())
		assert.Equal(t, "John", person.FirstName())
		assert.Equal(t, "Doe", person.LastName())
	})

	t.Run("rejects empty names", func(t *testing.T) {
		tests := []struct {
			name      string
			firstName string
			lastName  string
			want      string
		}{
			{"empty first name", "", "Doe", "first name must not be empty"},
			{"empty last name", "John", "", "last name must not be empty"},
			{"both empty", "", "", "first name must not be empty. last name must not be empty"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				person, err := NewPerson(tt.firstName, tt.lastName)
				assert.Nil(t, person)

				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr), "expected *ValidationError, got %T", err)
				assert.Equal(t, tt.want, validationErr.Error())
			})
		}
	})
}

func TestPersonRename(t *testing.T) {
	person, err := NewPerson("John", "Doe")
	require.NoError(t, err)
	id := person.ID()

	require.NoError(t, person.Rename("Jane", "Smith"))
	assert.Equal(t, "Jane", person.FirstName())
	assert.Equal(t, "Smith", person.LastName())
	assert.Equal(t, id, person.ID(), "rename must not change the id")

	err = person.Rename("", "Brown")
	assert.Error(t, err)
	assert.Equal(t, "Jane", person.FirstName(), "failed rename must leave the first name unchanged")
	assert.Equal(t, "Smith", person.LastName(), "failed rename must leave the last name unchanged")
}

func TestPersonEquality(t *testing.T) {
	p1, err := NewPerson("John", "Doe")
	require.NoError(t, err)
	p2, err := NewPerson("John", "Doe")
	require.NoError(t, err)

	assert.True(t, p1.Equal(p1), "a person is equal to itself")
	assert.False(t, p1.Equal(p2), "persons with the same names but different ids are different entities")
	assert.False(t, p1.Equal(nil))
	assert.NotEqual(t, p1.ID(), p2.ID())

	restored := RestorePerson(p1.ID(), "Other", "Name")
	assert.True(t, p1.Equal(restored), "equality is by id only")
}

func TestParseSortKey(t *testing.T) {
	for _, key := range []string{"firstName", "lastName"} {
		got, err := ParseSortKey(key)
		require.NoError(t, err)
		assert.Equal(t, SortKey(key), got)
	}

	_, err := ParseSortKey("age")
	var sortErr *UnknownSortKeyError
	require.True(t, errors.As(err, &sortErr))
	assert.Equal(t, "age", sortErr.Key)
	assert.Contains(t, err.Error(), "age")
}

func TestPageRequestOffsetBasic(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 2, Size: 20}.Offset())
}
