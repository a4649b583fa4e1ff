package sentinel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicate(t *testing.T) {
	err := fmt.Errorf("insert caregiver: %w", Duplicate("aadhaar_number"))

	assert.ErrorIs(t, err, ErrAlreadyUsed)
	field, ok := DuplicateField(err)
	assert.True(t, ok)
	assert.Equal(t, "aadhaar_number", field)

	_, ok = DuplicateField(ErrNotFound)
	assert.False(t, ok)
}
