package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkora-server/internal/domain"
	"linkora-server/pkg/utils"
	xerrors "linkora-server/pkg/utils/errors"
	"linkora-server/pkg/utils/id"
)

func newIdentityRepo(t *testing.T) *IdentityRepo {
	t.Helper()
	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)
	return NewIdentityRepo(sf)
}

func seedUser(t *testing.T, r *IdentityRepo, email, username, password string) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &domain.User{
		ID:           r.sf.Generate(),
		Email:        email,
		Username:     username,
		Name:         "Seeded",
		PasswordHash: hash,
		IsVerified:   true,
	}
	r.Seed(user)
	return user
}

func TestRegisterReturnsSixDigitCode(t *testing.T) {
	r := newIdentityRepo(t)

	code, err := r.Register("a@x.com", "@a", "A", "p1")
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9', "code must be numeric: %q", code)
	}
	assert.True(t, r.PendingFor("a@x.com"))
}

func TestRegisterRejectsTakenEmailAndUsername(t *testing.T) {
	r := newIdentityRepo(t)
	seedUser(t, r, "taken@x.com", "@taken", "pw")

	_, err := r.Register("taken@x.com", "@fresh", "F", "pw")
	assert.ErrorIs(t, err, xerrors.ErrEmailTaken)

	_, err = r.Register("fresh@x.com", "@taken", "F", "pw")
	assert.ErrorIs(t, err, xerrors.ErrUsernameTaken)
}

func TestRegisterOverwritesPendingForSameEmail(t *testing.T) {
	r := newIdentityRepo(t)

	first, err := r.Register("a@x.com", "@a", "A", "p1")
	require.NoError(t, err)
	second, err := r.Register("a@x.com", "@a", "A", "p1")
	require.NoError(t, err)

	// The earlier code is dead once the entry is overwritten. Codes are
	// random, so guard against the rare collision.
	if first != second {
		_, err = r.VerifyEmail("a@x.com", first)
		assert.ErrorIs(t, err, xerrors.ErrInvalidCode)
	}
	_, err = r.VerifyEmail("a@x.com", second)
	assert.NoError(t, err)
}

func TestVerifyEmailWrongCodeKeepsPending(t *testing.T) {
	r := newIdentityRepo(t)
	code, err := r.Register("a@x.com", "@a", "A", "p1")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err = r.VerifyEmail("a@x.com", wrong)
	assert.ErrorIs(t, err, xerrors.ErrInvalidCode)
	assert.True(t, r.PendingFor("a@x.com"), "a failed attempt must not consume the entry")

	user, err := r.VerifyEmail("a@x.com", code)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsVerified)
	assert.False(t, user.IsAdmin)
	assert.Empty(t, user.Avatar)
	assert.False(t, r.PendingFor("a@x.com"))
}

func TestVerifyEmailNoPending(t *testing.T) {
	r := newIdentityRepo(t)
	_, err := r.VerifyEmail("ghost@x.com", "123456")
	assert.ErrorIs(t, err, xerrors.ErrNoPendingVerification)
}

func TestVerifyEmailHashesPassword(t *testing.T) {
	r := newIdentityRepo(t)
	code, err := r.Register("a@x.com", "@a", "A", "p1")
	require.NoError(t, err)

	user, err := r.VerifyEmail("a@x.com", code)
	require.NoError(t, err)
	assert.NotEqual(t, "p1", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "p1"))
}

func TestTwoVerificationsCannotShareUsername(t *testing.T) {
	r := newIdentityRepo(t)

	// Both registrations pass: uniqueness only binds verified users.
	codeA, err := r.Register("a@x.com", "@dup", "A", "p1")
	require.NoError(t, err)
	codeB, err := r.Register("b@x.com", "@dup", "B", "p2")
	require.NoError(t, err)

	_, err = r.VerifyEmail("a@x.com", codeA)
	require.NoError(t, err)

	_, err = r.VerifyEmail("b@x.com", codeB)
	assert.ErrorIs(t, err, xerrors.ErrUsernameTaken)
	assert.Len(t, r.ListPublic(), 1)
}

func TestLogin(t *testing.T) {
	r := newIdentityRepo(t)
	seeded := seedUser(t, r, "admin@x.com", "@admin", "secret")

	user, err := r.Login("admin@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)

	_, err = r.Login("admin@x.com", "wrong")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)

	_, err = r.Login("nobody@x.com", "secret")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestSetAvatar(t *testing.T) {
	r := newIdentityRepo(t)
	seeded := seedUser(t, r, "a@x.com", "@a", "pw")

	user, err := r.SetAvatar(seeded.ID, "https://cdn.example/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/a.png", user.Avatar)

	_, err = r.SetAvatar("missing", "x")
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)
}

func TestListPublicStripsPasswordHash(t *testing.T) {
	r := newIdentityRepo(t)
	seedUser(t, r, "a@x.com", "@a", "pw")
	seedUser(t, r, "b@x.com", "@b", "pw")

	users := r.ListPublic()
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
	// Insertion order.
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.Equal(t, "b@x.com", users[1].Email)
}
