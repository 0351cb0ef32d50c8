package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ekuzmina/shopfront/internal/common"
	"github.com/ekuzmina/shopfront/internal/models"
)

// Login prompts for an email/username and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Email or username", os.Stdout)
	if err != nil {
		return err
	}
	pw, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	resp, err := a.auth.Login(ctx, models.LoginRequest{
		EmailOrUsername: id,
		Password:        string(pw),
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid email/username or password")
			return err
		}
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.User.DisplayName, resp.User.Role)
	return nil
}

// Signup collects a new profile and opens a session for it.
func (a *App) Signup(ctx context.Context) error {
	req := models.SignupRequest{}

	var err error
	if req.FirstName, err = GetSimpleText(a.reader, "First name", os.Stdout); err != nil {
		return err
	}
	if req.LastName, err = GetSimpleText(a.reader, "Last name", os.Stdout); err != nil {
		return err
	}
	if req.UserName, err = GetSimpleText(a.reader, "Username", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if req.Phone, err = GetSimpleText(a.reader, "Phone", os.Stdout); err != nil {
		return err
	}
	gender, err := GetSimpleText(a.reader, "Gender (male/female/other)", os.Stdout)
	if err != nil {
		return err
	}
	req.Gender = models.Gender(gender)
	if req.DateOfBirth, err = GetSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	req.Role = models.RoleUser

	pw, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	req.Password = string(pw)

	resp, err := a.auth.Signup(ctx, req)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			fmt.Println("A user with this email or username already exists")
			return err
		}
		return err
	}

	fmt.Printf("Welcome, %s\n", resp.User.DisplayName)
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("Logged out")
	return nil
}

// WhoAmI prints the active identity.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.auth.ActiveIdentity().Get()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s id=%s\n", user.DisplayName, user.Email, user.Role, user.ID)
	return nil
}
