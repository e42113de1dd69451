package api

import (
	"context"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
)

// TokenSource supplies the current access token for outbound requests.
// An empty string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the API surface the rest of the application programs against.
type Client interface {
	Register(ctx context.Context, email, password, fullName string) error
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
	Profile(ctx context.Context) (*models.User, error)

	InitializePayment(ctx context.Context, amount int64, currency, idempotencyKey string) (*models.PendingPayment, error)
	VerifyPayment(ctx context.Context, reference string) (*models.VerificationResult, error)
	PaymentHistory(ctx context.Context, page, limit int) (*HistoryPage, error)

	AdminUsers(ctx context.Context, page, limit int) (*UsersPage, error)
	AdminTransactions(ctx context.Context, page, limit int, status models.PaymentStatus) (*TransactionsPage, error)
}
