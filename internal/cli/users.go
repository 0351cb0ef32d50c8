package cli

import (
	"context"
	"fmt"

	"github.com/ekuzmina/shopfront/internal/models"
)

// ListUsers prints the user directory, optionally filtered by a search query.
func (a *App) ListUsers(ctx context.Context, query string) error {
	var (
		users []models.User
		err   error
	)
	if query == "" {
		users, err = a.users.List(ctx)
	} else {
		users, err = a.users.Search(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%-10s %-20s %-30s %s\n", u.ID, u.DisplayName, u.Email, u.Role)
	}
	return nil
}

// ShowUser prints one user by id.
func (a *App) ShowUser(ctx context.Context, id string) error {
	u, ok, err := a.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving user: %w", err)
	}
	if !ok {
		fmt.Println("No such user")
		return nil
	}
	fmt.Printf("%s %s (%s)\n  email: %s\n  phone: %s\n  gender: %s\n  dob: %s\n  role: %s\n",
		u.FirstName, u.LastName, u.UserName, u.Email, u.Phone, u.Gender, u.DateOfBirth, u.Role)
	return nil
}

// DeleteUser removes one user by id.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	removed, err := a.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if removed {
		fmt.Println("User deleted")
	} else {
		fmt.Println("No such user (nothing deleted)")
	}
	return nil
}
