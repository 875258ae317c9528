package cli

import (
	"context"
	"errors"
	"fmt"

	"hackline/internal/common"
)

func (a *App) Signup(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Pick a username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	name, err := GetSimpleText(a.reader, "Your full name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.session.Signup(ctx, username, password, name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUsernameTaken):
			fmt.Fprintf(a.out, "Username %q is already taken.\n", username)
		case errors.Is(err, common.ErrValidation):
			fmt.Fprintf(a.out, "Signup rejected: %v\n", err)
		default:
			fmt.Fprintf(a.out, "Signup failed: %v\n", err)
		}
		return
	}

	a.currentUser = user
	a.saveCredentials(ctx)
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
}

func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.session.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid username or password.")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return
	}

	a.currentUser = user
	a.saveCredentials(ctx)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
}

func (a *App) Logout(ctx context.Context) {
	if a.currentUser == nil {
		return
	}
	a.currentUser = nil
	if err := a.creds.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear stored credentials", "err", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
}

// saveCredentials failures are non-fatal: the session still works, only the
// next restore won't.
func (a *App) saveCredentials(ctx context.Context) {
	u := a.currentUser
	if err := a.creds.Save(ctx, u.Username, u.LoginToken); err != nil {
		a.log.Warn(ctx, "failed to store credentials", "username", u.Username, "err", err)
	}
}
