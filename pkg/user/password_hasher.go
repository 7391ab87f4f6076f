package user

import (
	"golang.org/x/crypto/bcrypt"
)

type (
	// PasswordHasher abstracts credential hashing so the scheme can be
	// swapped without touching the service.
	PasswordHasher interface {
		Hash(plain string) (string, error)
		Compare(hashed string, plain string) error
	}

	bcryptHasher struct {
		cost int
	}
)

func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(hashed string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
