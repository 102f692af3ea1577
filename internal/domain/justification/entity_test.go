package justification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAbonaHoras(t *testing.T) {
	credited := map[Type]bool{
		TypeVacation:       true,
		TypeHealthProblems: true,
		TypeFamilyIssue:    true,
		TypeTraining:       true,
	}

	for _, typ := range AllTypes {
		assert.Equal(t, credited[typ], DefaultAbonaHoras(typ), string(typ))
	}
}

func TestIsValidType(t *testing.T) {
	for _, typ := range AllTypes {
		assert.True(t, IsValidType(typ), string(typ))
	}

	assert.False(t, IsValidType(Type("sabbatical")))
	assert.False(t, IsValidType(Type("")))
}
