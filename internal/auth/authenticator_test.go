package auth

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ekuzmina/shopfront/internal/common"
	"github.com/ekuzmina/shopfront/internal/kv"
	"github.com/ekuzmina/shopfront/internal/kv/memkv"
	"github.com/ekuzmina/shopfront/internal/latency"
	"github.com/ekuzmina/shopfront/internal/logging"
	"github.com/ekuzmina/shopfront/internal/models"
	"github.com/ekuzmina/shopfront/internal/services"
)

// ---- helpers ----

type recordingNav struct {
	calls int
}

func (n *recordingNav) NavigateToLogin() { n.calls++ }

func newAuthenticator(t *testing.T, medium kv.Store) (*Authenticator, *recordingNav) {
	t.Helper()
	log := logging.NewNopLogger()
	durable := kv.NewDurable(medium, log)
	users := services.NewUserService(durable, nil, latency.None{}, log)
	nav := &recordingNav{}
	a := New(durable, users, log, Options{
		Sleeper: latency.None{},
		Nav:     nav,
	})
	return a, nav
}

func login(t *testing.T, a *Authenticator, id, password string) (models.AuthResponse, error) {
	t.Helper()
	return a.Login(context.Background(), models.LoginRequest{
		EmailOrUsername: id,
		Password:        password,
	})
}

// ---- TESTS ----

func TestLogin_SucceedsWithFixtureCredential(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	resp, err := login(t, a, "john.doe@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "1", resp.User.ID)
	require.Equal(t, models.RoleUser, resp.User.Role)
	require.Equal(t, 3600, resp.ExpiresIn)
	require.NotEmpty(t, resp.AccessToken)
	require.True(t, a.IsLoggedIn())
}

func TestLogin_AcceptsUserNameInsteadOfEmail(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	resp, err := login(t, a, "janesmith", "password123")
	require.NoError(t, err)
	require.Equal(t, "2", resp.User.ID)
	require.Equal(t, models.RoleAdmin, resp.User.Role)
}

func TestLogin_WrongPasswordFails(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	_, err := login(t, a, "john.doe@example.com", "wrong-password")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.False(t, a.IsLoggedIn())
}

func TestLogin_UnknownIdentityFails(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	_, err := login(t, a, "nobody@example.com", "password123")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_TwiceIssuesDistinctTokens(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	first, err := login(t, a, "john.doe@example.com", "password123")
	require.NoError(t, err)
	second, err := login(t, a, "john.doe@example.com", "password123")
	require.NoError(t, err)

	require.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestLogin_PersistsSessionForNextProcess(t *testing.T) {
	medium := memkv.New()
	a, _ := newAuthenticator(t, medium)

	resp, err := login(t, a, "john.doe@example.com", "password123")
	require.NoError(t, err)

	// A fresh authenticator over the same medium restores the session.
	restored, _ := newAuthenticator(t, medium)
	require.True(t, restored.IsLoggedIn())
	require.Equal(t, resp.User.ID, restored.ActiveIdentity().Get().ID)

	token, ok := restored.CurrentToken(context.Background())
	require.True(t, ok)
	require.Equal(t, resp.AccessToken, token)
}

func TestRestore_MalformedIdentityStartsSignedOut(t *testing.T) {
	ctx := context.Background()
	medium := memkv.New()
	require.NoError(t, medium.Set(ctx, TokenStorageKey, "some-token"))
	require.NoError(t, medium.Set(ctx, IdentityStorageKey, "{broken"))

	a, _ := newAuthenticator(t, medium)
	require.False(t, a.IsLoggedIn())
}

func TestRestore_MissingTokenStartsSignedOut(t *testing.T) {
	ctx := context.Background()
	medium := memkv.New()
	user, err := json.Marshal(models.User{ID: "1"})
	require.NoError(t, err)
	require.NoError(t, medium.Set(ctx, IdentityStorageKey, string(user)))

	a, _ := newAuthenticator(t, medium)
	require.False(t, a.IsLoggedIn())
}

func TestSignup_NewIdentityIsLoggedInImmediately(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	resp, err := a.Signup(context.Background(), models.SignupRequest{
		CreateUserRequest: models.CreateUserRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			UserName:  "ada",
			Email:     "ada@example.com",
			Gender:    models.GenderFemale,
			Role:      models.RoleUser,
		},
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.User.ID)
	require.Equal(t, "Ada Lovelace", resp.User.DisplayName)
	require.True(t, a.IsLoggedIn())
}

func TestSignup_DuplicateEmailFailsWithoutMutation(t *testing.T) {
	ctx := context.Background()
	medium := memkv.New()
	log := logging.NewNopLogger()
	durable := kv.NewDurable(medium, log)
	users := services.NewUserService(durable, nil, latency.None{}, log)
	a := New(durable, users, log, Options{Sleeper: latency.None{}})

	before, err := users.List(ctx)
	require.NoError(t, err)

	_, err = a.Signup(ctx, models.SignupRequest{
		CreateUserRequest: models.CreateUserRequest{
			UserName: "fresh-name",
			Email:    "john.doe@example.com",
		},
	})
	require.ErrorIs(t, err, common.ErrDuplicateUser)
	require.False(t, a.IsLoggedIn())

	after, err := users.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestSignup_DuplicateUserNameFails(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	_, err := a.Signup(context.Background(), models.SignupRequest{
		CreateUserRequest: models.CreateUserRequest{
			UserName: "johndoe",
			Email:    "fresh@example.com",
		},
	})
	require.ErrorIs(t, err, common.ErrDuplicateUser)
}

func TestLogout_ClearsIdentityAndStorage(t *testing.T) {
	ctx := context.Background()
	medium := memkv.New()
	a, nav := newAuthenticator(t, medium)

	_, err := login(t, a, "john.doe@example.com", "password123")
	require.NoError(t, err)

	a.Logout(ctx)

	require.False(t, a.IsLoggedIn())
	require.Nil(t, a.ActiveIdentity().Get())
	require.Equal(t, 1, nav.calls)

	_, ok, err := medium.Get(ctx, TokenStorageKey)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = medium.Get(ctx, IdentityStorageKey)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok = a.CurrentToken(ctx)
	require.False(t, ok)
}

func TestActiveIdentity_NotifiesSubscribers(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())
	ch, cancel := a.ActiveIdentity().Subscribe()
	defer cancel()

	_, err := login(t, a, "john.doe@example.com", "password123")
	require.NoError(t, err)

	user := <-ch
	require.NotNil(t, user)
	require.Equal(t, "1", user.ID)
}

func TestLogin_AbortsOnCanceledContext(t *testing.T) {
	a, _ := newAuthenticator(t, memkv.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Login(ctx, models.LoginRequest{
		EmailOrUsername: "john.doe@example.com",
		Password:        "password123",
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, a.IsLoggedIn())
}
