package cli

import (
	"context"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
)

// History re-fetches and re-renders the user's payment listing.
func (a *App) History(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}
	view := a.dashboard.RefreshUserHistory(ctx)
	a.maybeInvalidate(ctx, view.Unauthorized)
	return nil
}

// Users lists all accounts. Admin only.
func (a *App) Users(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	view := a.dashboard.RefreshAdminUsers(ctx)
	a.maybeInvalidate(ctx, view.Unauthorized)
	return nil
}

// Transactions lists all payments across users, optionally filtered by
// status ('transactions success'). Admin only.
func (a *App) Transactions(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	var status models.PaymentStatus
	if len(args) > 0 {
		status = models.PaymentStatus(args[0])
	}
	view := a.dashboard.RefreshAdminTransactions(ctx, status)
	a.maybeInvalidate(ctx, view.Unauthorized)
	return nil
}
