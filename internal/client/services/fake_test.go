package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/STORMGAMER0/Paygate/internal/client/api"
	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	RegisterErr error

	LoginToken string
	LoginUser  *models.User
	LoginErr   error

	ProfileRet *models.User
	ProfileErr error

	InitializeRet *models.PendingPayment
	InitializeErr error

	VerifyRet *models.VerificationResult
	VerifyErr error

	HistoryRet *api.HistoryPage
	HistoryErr error

	AdminUsersRet *api.UsersPage
	AdminUsersErr error

	AdminTxRet *api.TransactionsPage
	AdminTxErr error

	// captured arguments
	LastRegisterEmail    string
	LastRegisterPassword string
	LastRegisterFullName string

	LastLoginEmail    string
	LastLoginPassword string

	LastInitAmount   int64
	LastInitCurrency string
	LastInitKey      string

	LastVerifyReference string

	HistoryCalls int
	LastStatus   models.PaymentStatus
}

func (f *fakeClient) Register(ctx context.Context, email, password, fullName string) error {
	f.LastRegisterEmail, f.LastRegisterPassword, f.LastRegisterFullName = email, password, fullName
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	f.LastLoginEmail, f.LastLoginPassword = email, password
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.User, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) InitializePayment(ctx context.Context, amount int64, currency, idempotencyKey string) (*models.PendingPayment, error) {
	f.LastInitAmount, f.LastInitCurrency, f.LastInitKey = amount, currency, idempotencyKey
	return f.InitializeRet, f.InitializeErr
}

func (f *fakeClient) VerifyPayment(ctx context.Context, reference string) (*models.VerificationResult, error) {
	f.LastVerifyReference = reference
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) PaymentHistory(ctx context.Context, page, limit int) (*api.HistoryPage, error) {
	f.HistoryCalls++
	return f.HistoryRet, f.HistoryErr
}

func (f *fakeClient) AdminUsers(ctx context.Context, page, limit int) (*api.UsersPage, error) {
	return f.AdminUsersRet, f.AdminUsersErr
}

func (f *fakeClient) AdminTransactions(ctx context.Context, page, limit int, status models.PaymentStatus) (*api.TransactionsPage, error) {
	f.LastStatus = status
	return f.AdminTxRet, f.AdminTxErr
}

// fakeReconciler counts refresh triggers.
type fakeReconciler struct {
	Calls int
	Ret   *HistoryView
}

func (f *fakeReconciler) RefreshUserHistory(ctx context.Context) *HistoryView {
	f.Calls++
	if f.Ret != nil {
		return f.Ret
	}
	return &HistoryView{State: RenderStateEmpty}
}

// manualScheduler records scheduled tasks and lets tests fire or cancel them
// deterministically.
type manualScheduler struct {
	Delay     time.Duration
	Fn        func()
	Cancelled bool
}

func (m *manualScheduler) Schedule(d time.Duration, fn func()) func() bool {
	m.Delay = d
	m.Fn = fn
	return func() bool {
		m.Cancelled = true
		return true
	}
}

// Fire runs the scheduled task as if the delay elapsed.
func (m *manualScheduler) Fire() {
	if m.Fn != nil {
		m.Fn()
	}
}
