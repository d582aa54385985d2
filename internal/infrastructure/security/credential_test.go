package security

import (
	"testing"

	"cpptutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestInstructorCredentialFromPassword(t *testing.T) {
	cred, err := NewInstructorCredential(NewPasswordHasher(), "", "instructor123")
	require.NoError(t, err)

	assert.NoError(t, cred.Check("instructor123"))
	assert.ErrorIs(t, cred.Check("Instructor123"), domain.ErrAuthFailed)
	assert.ErrorIs(t, cred.Check(""), domain.ErrAuthFailed)
}

func TestInstructorCredentialFromHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cred, err := NewInstructorCredential(NewPasswordHasher(), string(hash), "ignored")
	require.NoError(t, err)
	assert.NoError(t, cred.Check("s3cret"))
	assert.ErrorIs(t, cred.Check("ignored"), domain.ErrAuthFailed)
}

func TestInstructorCredentialNeedsSecret(t *testing.T) {
	_, err := NewInstructorCredential(NewPasswordHasher(), "", "")
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher()
	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)
	assert.NoError(t, h.Compare(hash, "pw"))
	assert.Error(t, h.Compare(hash, "nope"))
}
