// Package services instantiates the generic entity store for each record
// kind and adds the per-kind behavior: derived fields, searchable fields,
// and kind-specific queries.
package services

import (
	"context"

	"github.com/ekuzmina/shopfront/internal/entitystore"
	"github.com/ekuzmina/shopfront/internal/fixtures"
	"github.com/ekuzmina/shopfront/internal/gateway"
	"github.com/ekuzmina/shopfront/internal/kv"
	"github.com/ekuzmina/shopfront/internal/latency"
	"github.com/ekuzmina/shopfront/internal/logging"
	"github.com/ekuzmina/shopfront/internal/models"
	"github.com/ekuzmina/shopfront/internal/reactive"
)

// UsersStorageKey is the durable key the user collection persists under.
const UsersStorageKey = "users_data"

// UserService is the mock user directory.
//
// All operations simulate a remote call: they wait out the configured
// latency and honor context cancellation before touching state.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (models.User, bool, error)
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]models.User, error)

	// Exists reports whether some record matches the email or username.
	// An intra-process check, not a simulated remote call.
	Exists(ctx context.Context, email, userName string) bool

	// Collection is the reactive snapshot the UI re-renders from.
	Collection() reactive.ReadOnly[[]models.User]
}

type userService struct {
	store   *entitystore.Store[models.User]
	gateway gateway.Gateway
}

// NewUserService builds the user directory over the given durable medium.
// The gateway is the seam a real backend would be called through; the mock
// path never dials it. sleeper may be nil to use wall-clock latency.
func NewUserService(durable *kv.Durable, gw gateway.Gateway, sleeper latency.Sleeper, log logging.Logger) UserService {
	cfg := entitystore.Config[models.User]{
		Name:       "users",
		StorageKey: UsersStorageKey,
		Seed:       fixtures.Users,
		ID:         func(u models.User) string { return u.ID },
		AssignID:   func(u *models.User, id string) { u.ID = id },
		SearchText: func(u models.User) []string {
			return []string{u.FirstName, u.LastName, u.Email, u.UserName}
		},
		Sleeper: sleeper,
	}
	return &userService{
		store:   entitystore.New(cfg, durable, log),
		gateway: gw,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	// In production: s.gateway.Get(ctx, "/users", nil, &users)
	return s.store.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (models.User, bool, error) {
	return s.store.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	user := models.User{
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
	return s.store.Create(ctx, user)
}

// Update merges only the supplied fields over the stored record.
// DisplayName is recomputed only when FirstName and LastName arrive in the
// same request; a partial rename keeps the stored combined name.
func (s *userService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	return s.store.Update(ctx, id, func(u models.User) models.User {
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}
		if req.UserName != nil {
			u.UserName = *req.UserName
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if req.Gender != nil {
			u.Gender = *req.Gender
		}
		if req.DateOfBirth != nil {
			u.DateOfBirth = *req.DateOfBirth
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.FirstName != nil && req.LastName != nil {
			u.DisplayName = models.FullName(*req.FirstName, *req.LastName)
		}
		return u
	})
}

func (s *userService) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

func (s *userService) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.store.Search(ctx, query)
}

func (s *userService) Exists(ctx context.Context, email, userName string) bool {
	return s.store.Any(ctx, func(u models.User) bool {
		return u.Email == email || u.UserName == userName
	})
}

func (s *userService) Collection() reactive.ReadOnly[[]models.User] {
	return s.store.Collection()
}
