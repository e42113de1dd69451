package models

import "time"

// PaymentStatus is the server-reported state of a transaction.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSuccess   PaymentStatus = "success"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusAbandoned PaymentStatus = "abandoned"
)

// Settled reports whether the status is terminal from the gateway's point
// of view. Pending transactions may still be re-verified later.
func (s PaymentStatus) Settled() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed || s == PaymentStatusAbandoned
}

// PendingPayment is the ephemeral context of one initialized payment: the
// reference under which the server tracks it and the external authorization
// URL where the user completes it. It exists only between initialization
// and verification (or dismissal).
type PendingPayment struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Amount           int64 // minor units
	Currency         string
}

// PaymentRecord is a read-only projection of one transaction as listed by
// the history endpoints. Amounts are in minor units.
type PaymentRecord struct {
	ID         int64         `json:"id"`
	Reference  string        `json:"reference"`
	Amount     int64         `json:"amount"`
	Currency   string        `json:"currency"`
	Status     PaymentStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	VerifiedAt *time.Time    `json:"verified_at,omitempty"`
}

// AdminTransaction is the admin-scoped transaction projection, which also
// carries the owning user's email.
type AdminTransaction struct {
	ID         int64         `json:"id"`
	Reference  string        `json:"reference"`
	UserEmail  string        `json:"user_email"`
	Amount     int64         `json:"amount"`
	Currency   string        `json:"currency"`
	Status     PaymentStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	VerifiedAt *time.Time    `json:"verified_at,omitempty"`
}

// VerificationResult is the authoritative outcome of one verification round
// trip. The client never infers it locally.
type VerificationResult struct {
	Reference     string
	Amount        int64
	Currency      string
	Status        PaymentStatus
	PaidAt        *time.Time
	CustomerEmail string
}
