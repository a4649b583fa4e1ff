package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "carenest/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCaregiverID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseBookingID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseSeniorID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID with surrounding whitespace", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseReviewID("  " + valid.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, ReviewID(valid), id)
	})
}

func TestIDJSONRoundTrip(t *testing.T) {
	type payload struct {
		Caregiver CaregiverID `json:"caregiver"`
	}
	in := payload{Caregiver: NewCaregiverID()}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), in.Caregiver.String())

	var out payload
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.Caregiver, out.Caregiver)
}

func TestAccountConversion(t *testing.T) {
	raw := uuid.New()
	account := AccountID(raw)
	assert.Equal(t, CaregiverID(raw), account.CaregiverID())
	assert.Equal(t, SeniorID(raw), account.SeniorID())
	assert.False(t, account.IsNil())
	assert.True(t, AccountID{}.IsNil())
}
