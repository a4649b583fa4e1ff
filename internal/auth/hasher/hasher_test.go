package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dErrors "carenest/pkg/domain-errors"
)

func TestBcrypt(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, h.Matches(hash, "secret123"))
	assert.False(t, h.Matches(hash, "secret124"))
	assert.False(t, h.Matches("not-a-hash", "secret123"))
}

func TestBcryptRejectsOverlongPassword(t *testing.T) {
	_, err := New(bcrypt.MinCost).Hash(strings.Repeat("a", 80))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestNewClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, New(0).cost)
	assert.Equal(t, bcrypt.MaxCost, New(99).cost)
}
