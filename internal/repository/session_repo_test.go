package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkora-server/internal/domain"
)

func TestSessionBindLookupUnbind(t *testing.T) {
	r := NewSessionRepo()
	alice := &domain.User{ID: "u1", Username: "@alice"}
	bob := &domain.User{ID: "u2", Username: "@bob"}

	_, ok := r.Lookup("conn-1")
	assert.False(t, ok, "fresh connections are anonymous")

	r.Bind("conn-1", alice)
	got, ok := r.Lookup("conn-1")
	require.True(t, ok)
	assert.Equal(t, alice, got)

	// Re-login overwrites the prior binding.
	r.Bind("conn-1", bob)
	got, ok = r.Lookup("conn-1")
	require.True(t, ok)
	assert.Equal(t, bob, got)

	r.Unbind("conn-1")
	_, ok = r.Lookup("conn-1")
	assert.False(t, ok)

	// Idempotent.
	r.Unbind("conn-1")
	_, ok = r.Lookup("conn-1")
	assert.False(t, ok)
}
