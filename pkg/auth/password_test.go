package auth_test

import (
	"testing"

	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Mounika123")
	require.NoError(t, err)
	require.NotEqual(t, "Mounika123", hash)

	require.True(t, h.Compare(hash, "Mounika123"))
	require.False(t, h.Compare(hash, "mounika123"))
	require.False(t, h.Compare("", "Mounika123"))
}
