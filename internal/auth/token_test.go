package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMintToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := MintToken("user-7", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := UserIDFromToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "user-7", userID)
}

func TestMintToken_TokensAreUniquePerCall(t *testing.T) {
	secret := []byte("test-secret")

	a, err := MintToken("user-7", secret, time.Hour)
	require.NoError(t, err)
	b, err := MintToken("user-7", secret, time.Hour)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestUserIDFromToken_RejectsWrongSecret(t *testing.T) {
	token, err := MintToken("user-7", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, []byte("wrong"))
	require.Error(t, err)
}

func TestUserIDFromToken_RejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := MintToken("user-7", secret, -time.Minute)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, secret)
	require.Error(t, err)
}
