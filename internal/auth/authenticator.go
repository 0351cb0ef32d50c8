// Package auth implements the session authenticator: it gates the rest of
// the system behind a single active identity, restored from durable
// storage on construction and published as reactive state.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ekuzmina/shopfront/internal/common"
	"github.com/ekuzmina/shopfront/internal/fixtures"
	"github.com/ekuzmina/shopfront/internal/kv"
	"github.com/ekuzmina/shopfront/internal/latency"
	"github.com/ekuzmina/shopfront/internal/logging"
	"github.com/ekuzmina/shopfront/internal/models"
	"github.com/ekuzmina/shopfront/internal/reactive"
	"github.com/ekuzmina/shopfront/internal/services"
)

// Durable keys for the persisted session.
const (
	TokenStorageKey    = "auth_token"
	IdentityStorageKey = "auth_user"
)

// TokenValiditySeconds is the validity window reported in every
// AuthResponse.
const TokenValiditySeconds = 3600

// Navigator is the routing collaborator logout redirects through. The demo
// CLI plugs in a no-op; a web shell would navigate to its login view.
type Navigator interface {
	NavigateToLogin()
}

// NopNavigator ignores navigation requests.
type NopNavigator struct{}

func (NopNavigator) NavigateToLogin() {}

// Authenticator validates credentials against the bundled credential
// table, joins them to the full-profile table, and holds the resulting
// identity as process-wide reactive state. Exactly one identity is active
// at a time.
type Authenticator struct {
	durable  *kv.Durable
	users    services.UserService
	verifier CredentialVerifier
	sleeper  latency.Sleeper
	nav      Navigator
	log      logging.Logger
	secret   []byte

	creds    []models.Credential
	profiles []models.User

	identity *reactive.Cell[*models.User]
}

// Options tunes an Authenticator. Zero values get sensible defaults.
type Options struct {
	Verifier CredentialVerifier // default PlaintextVerifier (fixture table stores raw passwords)
	Sleeper  latency.Sleeper    // default latency.Wall
	Nav      Navigator          // default NopNavigator
	Secret   []byte             // token signing secret, default a fixed mock value
}

// New builds an Authenticator and restores any persisted session: if both
// durable keys are present and the identity parses, that user starts out
// active; otherwise the process starts signed out.
func New(durable *kv.Durable, users services.UserService, log logging.Logger, opts Options) *Authenticator {
	if opts.Verifier == nil {
		opts.Verifier = PlaintextVerifier{}
	}
	if opts.Sleeper == nil {
		opts.Sleeper = latency.Wall{}
	}
	if opts.Nav == nil {
		opts.Nav = NopNavigator{}
	}
	if opts.Secret == nil {
		opts.Secret = []byte("shopfront-mock-secret")
	}

	a := &Authenticator{
		durable:  durable,
		users:    users,
		verifier: opts.Verifier,
		sleeper:  opts.Sleeper,
		nav:      opts.Nav,
		log:      log.With("component", "auth"),
		secret:   opts.Secret,
		creds:    fixtures.Credentials(),
		profiles: fixtures.Users(),
		identity: reactive.NewCell[*models.User](nil),
	}
	a.restore(context.Background())
	return a
}

// restore loads the persisted session, if any. A missing token, a missing
// identity, or an unparsable identity all mean "signed out".
func (a *Authenticator) restore(ctx context.Context) {
	if _, ok := a.durable.Read(ctx, TokenStorageKey); !ok {
		return
	}
	raw, ok := a.durable.Read(ctx, IdentityStorageKey)
	if !ok {
		return
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		a.log.Warn(ctx, "stored identity is malformed, starting signed out", "error", err)
		return
	}
	a.identity.Set(&user)
}

// ActiveIdentity is the read-only reactive view of the signed-in user;
// nil means no active session.
func (a *Authenticator) ActiveIdentity() reactive.ReadOnly[*models.User] {
	return a.identity.AsReadOnly()
}

// IsAuthenticated recomputes from the active identity on every call.
func (a *Authenticator) IsAuthenticated() bool {
	return reactive.Derive(a.identity.AsReadOnly(), func(u *models.User) bool {
		return u != nil
	})()
}

// IsLoggedIn reports whether a session is active.
func (a *Authenticator) IsLoggedIn() bool { return a.IsAuthenticated() }

// CurrentToken returns the persisted session token, if any.
func (a *Authenticator) CurrentToken(ctx context.Context) (string, bool) {
	return a.durable.Read(ctx, TokenStorageKey)
}

// Login matches the request against the credential table (email OR
// username, plus password via the pluggable verifier), joins the match to
// the full-profile table, and on success activates and persists the
// session. A credential miss and a join miss are indistinguishable to the
// caller: both fail with ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := a.sleeper.Sleep(ctx, latency.Auth); err != nil {
		return models.AuthResponse{}, err
	}

	cred, ok := a.matchCredential(req)
	if !ok {
		return models.AuthResponse{}, common.ErrInvalidCredentials
	}

	profile, ok := a.joinProfile(cred)
	if !ok {
		a.log.Warn(ctx, "credential matched but profile join failed", "userName", cred.UserName)
		return models.AuthResponse{}, common.ErrInvalidCredentials
	}
	profile.DisplayName = cred.DisplayName

	return a.activate(ctx, profile)
}

// Signup rejects an email or username already present in the user
// directory with ErrDuplicateUser; otherwise it synthesizes the profile
// and treats it as logged in immediately.
func (a *Authenticator) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	if err := a.sleeper.Sleep(ctx, latency.Auth); err != nil {
		return models.AuthResponse{}, err
	}

	if a.users.Exists(ctx, req.Email, req.UserName) {
		return models.AuthResponse{}, common.ErrDuplicateUser
	}

	user := models.User{
		ID:          uuid.NewString(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		UserName:    req.UserName,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Role:        req.Role,
		DisplayName: models.FullName(req.FirstName, req.LastName),
	}

	return a.activate(ctx, user)
}

// Logout clears the persisted session and the active identity, then hands
// control to the routing collaborator.
func (a *Authenticator) Logout(ctx context.Context) {
	a.durable.Remove(ctx, TokenStorageKey)
	a.durable.Remove(ctx, IdentityStorageKey)
	a.identity.Set(nil)
	a.nav.NavigateToLogin()
}

// activate mints a token, persists token and identity, and publishes the
// new active user. Persistence is best-effort; the in-memory session is
// active either way.
func (a *Authenticator) activate(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := MintToken(user.ID, a.secret, TokenValiditySeconds*time.Second)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("mint token: %w", err)
	}

	a.durable.Write(ctx, TokenStorageKey, token)
	if data, err := json.Marshal(user); err == nil {
		a.durable.Write(ctx, IdentityStorageKey, string(data))
	} else {
		a.log.Warn(ctx, "failed to encode identity", "error", err)
	}

	a.identity.Set(&user)

	return models.AuthResponse{
		AccessToken: token,
		ExpiresIn:   TokenValiditySeconds,
		User:        user,
	}, nil
}

func (a *Authenticator) matchCredential(req models.LoginRequest) (models.Credential, bool) {
	for _, cred := range a.creds {
		idMatch := cred.Email == req.EmailOrUsername || cred.UserName == req.EmailOrUsername
		if idMatch && a.verifier.Verify(req.Password, cred.Password) {
			return cred, true
		}
	}
	return models.Credential{}, false
}

// joinProfile resolves a credential to its full profile by email or
// username. Inconsistent fixtures make this miss.
func (a *Authenticator) joinProfile(cred models.Credential) (models.User, bool) {
	for _, u := range a.profiles {
		if u.Email == cred.Email || u.UserName == cred.UserName {
			return u, true
		}
	}
	return models.User{}, false
}
