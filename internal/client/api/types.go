package api

import (
	"time"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
)

// Wire shapes follow the backend schemas. Errors arrive as {"detail": "..."}.

type errorResponse struct {
	Detail string `json:"detail"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

type initializePaymentRequest struct {
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
}

type initializePaymentResponse struct {
	Status           string `json:"status"`
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
}

type verifyPaymentResponse struct {
	Status        string     `json:"status"`
	Reference     string     `json:"reference"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	PaymentStatus string     `json:"payment_status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CustomerEmail string     `json:"customer_email"`
}

// HistoryPage is one bounded page of the current user's transactions.
// Total is the server-side count of the full history, which may exceed
// the page.
type HistoryPage struct {
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
	Payments []models.PaymentRecord `json:"payments"`
}

// UsersPage is one bounded page of the admin users listing.
type UsersPage struct {
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Users []models.User `json:"users"`
}

// TransactionsPage is one bounded page of the admin transactions listing.
type TransactionsPage struct {
	Total        int                       `json:"total"`
	Page         int                       `json:"page"`
	Limit        int                       `json:"limit"`
	Transactions []models.AdminTransaction `json:"transactions"`
}
