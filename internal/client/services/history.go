package services

import (
	"context"
	"errors"

	"github.com/STORMGAMER0/Paygate/internal/client/api"
	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/common"
	"github.com/STORMGAMER0/Paygate/internal/logging"
)

// RenderState distinguishes the three things a listing can show: records,
// a confirmed-empty placeholder, or an inline error. Fetch failures end up
// in the view, never as a returned error.
type RenderState string

const (
	RenderStateReady RenderState = "ready"
	RenderStateEmpty RenderState = "empty"
	RenderStateError RenderState = "error"
)

// HistoryView is the read model for the user's payment listing. Count and
// SuccessCount are recomputed from the fetched page on every refresh;
// ServerTotal is the authoritative full-history count the server reports
// alongside the page.
type HistoryView struct {
	State        RenderState
	Payments     []models.PaymentRecord
	Count        int
	SuccessCount int
	ServerTotal  int
	Err          string
	Unauthorized bool
}

// UsersView is the read model for the admin users listing.
type UsersView struct {
	State        RenderState
	Users        []models.User
	Count        int
	ServerTotal  int
	Err          string
	Unauthorized bool
}

// TransactionsView is the read model for the admin transactions listing.
type TransactionsView struct {
	State        RenderState
	Transactions []models.AdminTransaction
	Count        int
	SuccessCount int
	ServerTotal  int
	Err          string
	Unauthorized bool
}

// HistoryService re-fetches authoritative listings and rebuilds their read
// models wholesale. Replacing the entire view on every refresh is the only
// consistency mechanism: there is no incremental patching, so a refresh over
// unchanged backend data always yields the identical view.
type HistoryService interface {
	RefreshUserHistory(ctx context.Context) *HistoryView
	RefreshAdminUsers(ctx context.Context) *UsersView
	RefreshAdminTransactions(ctx context.Context, status models.PaymentStatus) *TransactionsView
}

type historyService struct {
	client api.Client
	limit  int
	log    logging.Logger
}

// NewHistoryService constructs a HistoryService fetching pages of at most
// limit records.
func NewHistoryService(client api.Client, limit int, log logging.Logger) HistoryService {
	return &historyService{client: client, limit: limit, log: log.With("component", "history")}
}

// RefreshUserHistory fetches the first page of the user's payments and
// rebuilds the view. Aggregates are derived from the fetched page; when the
// server total exceeds the page size they describe the page, not the full
// history.
func (h *historyService) RefreshUserHistory(ctx context.Context) *HistoryView {
	page, err := h.client.PaymentHistory(ctx, 1, h.limit)
	if err != nil {
		h.log.Error(ctx, "history refresh failed", "error", err)
		return &HistoryView{State: RenderStateError, Err: err.Error(), Unauthorized: isUnauthorized(err)}
	}

	view := &HistoryView{
		Payments:    page.Payments,
		Count:       len(page.Payments),
		ServerTotal: page.Total,
	}
	for _, p := range page.Payments {
		if p.Status == models.PaymentStatusSuccess {
			view.SuccessCount++
		}
	}
	if view.Count == 0 {
		view.State = RenderStateEmpty
	} else {
		view.State = RenderStateReady
	}
	return view
}

// RefreshAdminUsers fetches the first page of all users. Admin-only; the
// caller guards on role before invoking.
func (h *historyService) RefreshAdminUsers(ctx context.Context) *UsersView {
	page, err := h.client.AdminUsers(ctx, 1, h.limit)
	if err != nil {
		h.log.Error(ctx, "admin users refresh failed", "error", err)
		return &UsersView{State: RenderStateError, Err: err.Error(), Unauthorized: isUnauthorized(err)}
	}

	view := &UsersView{
		Users:       page.Users,
		Count:       len(page.Users),
		ServerTotal: page.Total,
	}
	if view.Count == 0 {
		view.State = RenderStateEmpty
	} else {
		view.State = RenderStateReady
	}
	return view
}

// RefreshAdminTransactions fetches the first page of all transactions,
// optionally filtered by status. Admin-only.
func (h *historyService) RefreshAdminTransactions(ctx context.Context, status models.PaymentStatus) *TransactionsView {
	page, err := h.client.AdminTransactions(ctx, 1, h.limit, status)
	if err != nil {
		h.log.Error(ctx, "admin transactions refresh failed", "error", err)
		return &TransactionsView{State: RenderStateError, Err: err.Error(), Unauthorized: isUnauthorized(err)}
	}

	view := &TransactionsView{
		Transactions: page.Transactions,
		Count:        len(page.Transactions),
		ServerTotal:  page.Total,
	}
	for _, tr := range page.Transactions {
		if tr.Status == models.PaymentStatusSuccess {
			view.SuccessCount++
		}
	}
	if view.Count == 0 {
		view.State = RenderStateEmpty
	} else {
		view.State = RenderStateReady
	}
	return view
}

func isUnauthorized(err error) bool {
	return errors.Is(err, common.ErrUnauthorized)
}
