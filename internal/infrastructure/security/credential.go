package security

import (
	"errors"

	"cpptutor/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (h *PasswordHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// InstructorCredential gates content edits behind one shared secret, kept
// only as a bcrypt hash.
type InstructorCredential struct {
	hasher *PasswordHasher
	hash   string
}

// NewInstructorCredential uses hash when given, otherwise hashes password.
func NewInstructorCredential(h *PasswordHasher, hash, password string) (*InstructorCredential, error) {
	if hash == "" {
		if password == "" {
			return nil, errors.New("instructor password is empty")
		}
		var err error
		if hash, err = h.Hash(password); err != nil {
			return nil, err
		}
	}
	return &InstructorCredential{hasher: h, hash: hash}, nil
}

func (c *InstructorCredential) Check(secret string) error {
	if err := c.hasher.Compare(c.hash, secret); err != nil {
		return domain.ErrAuthFailed
	}
	return nil
}
