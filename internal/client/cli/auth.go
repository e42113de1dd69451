package cli

import (
	"context"
	"fmt"

	"github.com/STORMGAMER0/Paygate/internal/common"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// Register prompts for an account's details and creates it. Registration
// grants no session; on success the user is pointed back to login with the
// email remembered as the next login prompt's default.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, password, fullName); err != nil {
		a.reportError(ctx, err)
		return err
	}

	a.prefillEmail = email
	fmt.Fprintln(a.out, "Account created. You can now login.")
	return nil
}

// Login prompts for credentials, authenticates, and on success lands the
// user on the role-appropriate dashboard. A failed login leaves the session
// untouched; the server's message is shown inline.
func (a *App) Login(ctx context.Context) error {
	email, err := getTextWithDefault(a.reader, "Enter email", a.prefillEmail, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	a.prefillEmail = ""
	fmt.Fprintf(a.out, "Login successful. Welcome, %s!\n", user.FullName)
	if user.IsAdmin() {
		fmt.Fprintln(a.out, "Opening admin dashboard...")
		a.dashboard.RefreshAdminTransactions(ctx, "")
	} else {
		fmt.Fprintln(a.out, "Opening dashboard...")
		a.dashboard.RefreshUserHistory(ctx)
	}
	return nil
}

// Logout clears the session unconditionally. No network call is involved,
// so logout always succeeds from the user's point of view.
func (a *App) Logout(ctx context.Context) error {
	a.paymentService.Dismiss()
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session storage", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Profile shows the authenticated user's record as known to the server.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}
	user, err := a.authService.Profile(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	fmt.Fprintf(a.out, "ID: %d\nEmail: %s\nName: %s\nRole: %s\nJoined: %s\n",
		user.ID, user.Email, user.FullName, user.Role, user.CreatedAt.Format("2006-01-02"))
	return nil
}
