package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/client/router"
	"github.com/dmitrijs2005/loandesk/internal/client/services"
	"github.com/dmitrijs2005/loandesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for username, password and role, then logs in and opens the
// dashboard. Field errors are printed one per line and the session is left
// as it was.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (ADMIN, BROKER, ANALYST, VIEWER)", a.out)
	if err != nil {
		return err
	}

	u, err := a.authService.Login(ctx, services.LoginForm{
		Username: userName,
		Password: password,
		Role:     strings.ToUpper(strings.TrimSpace(role)),
	})
	if err != nil {
		var verrs services.ValidationErrors
		if errors.As(err, &verrs) {
			for _, f := range []string{"username", "password", "role"} {
				if msg, ok := verrs[f]; ok {
					a.println(a.view.Error(f + " " + msg))
				}
			}
		} else {
			a.println(a.view.Error("Login failed: " + err.Error()))
		}
		return err
	}

	return a.afterLogin(ctx, u)
}

// QuickLogin logs in as the demo account of role.
func (a *App) QuickLogin(ctx context.Context, role string) error {
	r, err := models.ParseRole(role)
	if err != nil {
		a.println(a.view.Error("Usage: quick <admin|broker|analyst|viewer>"))
		return err
	}

	u, err := a.authService.QuickLogin(ctx, r)
	if err != nil {
		a.println(a.view.Error("Login failed: " + err.Error()))
		return err
	}
	return a.afterLogin(ctx, u)
}

func (a *App) afterLogin(ctx context.Context, u models.User) error {
	a.state.Reset()
	a.println(a.view.Success("Logged in as " + u.Name + " (" + string(u.Role) + ")"))
	return a.Goto(ctx, router.PathDashboard)
}

// Logout clears the session and the dashboard state and returns to the login
// page.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.state.Reset()
	if _, _, err := a.router.Navigate(router.PathLogin); err != nil {
		return err
	}
	a.println(a.view.Info("Logged out"))
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.authService.Current(ctx)
	if u == nil {
		a.println(a.view.Info("Not logged in"))
		return nil
	}
	a.println(a.view.Info(u.Name + " (" + string(u.Role) + ")"))
	return nil
}
