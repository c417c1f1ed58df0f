package infrastructure

import (
	"golang.org/x/crypto/bcrypt"
)

type PasswordService struct {
	cost int
}

// NewPasswordService returns a bcrypt hasher. Out-of-range costs fall back
// to bcrypt.DefaultCost.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext. Passwords longer than
// 72 bytes are rejected with bcrypt.ErrPasswordTooLong.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (p *PasswordService) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// ErrPasswordTooLong is returned by Hash for inputs bcrypt cannot represent.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
