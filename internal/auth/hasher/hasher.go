// Package hasher hashes and checks account passwords with bcrypt.
package hasher

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "carenest/pkg/domain-errors"
)

// Bcrypt hashes passwords at a fixed cost.
type Bcrypt struct {
	cost int
}

// New clamps cost into bcrypt's accepted range.
func New(cost int) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	return string(h), nil
}

// Matches reports whether password hashes to hash. Malformed hashes never match.
func (b *Bcrypt) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
