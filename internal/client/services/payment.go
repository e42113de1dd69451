package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/STORMGAMER0/Paygate/internal/client/api"
	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/common"
	"github.com/STORMGAMER0/Paygate/internal/logging"
)

// PaymentState tracks one payment attempt through its lifecycle.
type PaymentState string

const (
	StateIdle                       PaymentState = "idle"
	StateInitializing               PaymentState = "initializing"
	StateAwaitingExternalCompletion PaymentState = "awaiting_external_completion"
	StateVerifying                  PaymentState = "verifying"
	StateVerified                   PaymentState = "verified"
	StateVerificationFailed         PaymentState = "verification_failed"
)

// minorUnitsFactor converts major currency units to the smallest
// denomination the API accounts in (e.g. naira to kobo).
const minorUnitsFactor = 100

const defaultCurrency = "NGN"

// ErrInvalidAmount marks a payment amount that fails validation before any
// network call is attempted.
var ErrInvalidAmount = fmt.Errorf("%w: amount must be a positive whole number of major units", common.ErrValidation)

// Reconciler is the slice of the history service the orchestrator needs:
// after a payment settles (or a scheduled delay elapses) the dashboard view
// is rebuilt from server truth.
type Reconciler interface {
	RefreshUserHistory(ctx context.Context) *HistoryView
}

// PaymentService orchestrates one payment attempt at a time:
//
//	Idle -> Initializing -> AwaitingExternalCompletion -> Verifying
//	     -> Verified | VerificationFailed
//
// The external completion step happens on a third-party page entirely
// outside this process; the user may come back in a later session and
// re-verify by reference.
type PaymentService interface {
	// Initialize converts the major-unit amount to minor units, attaches a
	// fresh idempotency key, and submits the payment intent. On success the
	// returned pending payment (reference + authorization URL) becomes the
	// active one and a history refresh is scheduled after a fixed delay.
	Initialize(ctx context.Context, amountMajor int64, currency string) (*models.PendingPayment, error)

	// Verify asks the server for the authoritative status of reference and
	// triggers a history refresh on completion. The reference may come from
	// the active pending payment or from a previously listed record.
	Verify(ctx context.Context, reference string) (*models.VerificationResult, error)

	// Dismiss discards the active pending payment and cancels the scheduled
	// refresh. Nothing is cancelled server-side.
	Dismiss()

	// State reports the current lifecycle state.
	State() PaymentState

	// Pending returns the active pending payment, nil when there is none.
	Pending() *models.PendingPayment
}

type paymentService struct {
	client       api.Client
	reconciler   Reconciler
	scheduler    Scheduler
	refreshDelay time.Duration
	log          logging.Logger

	// newKey is a seam so tests can observe the generated key.
	newKey func() string

	mu            sync.Mutex
	state         PaymentState
	pending       *models.PendingPayment
	cancelRefresh func() bool
}

// NewPaymentService constructs the orchestrator. refreshDelay is how long
// after a successful initialization the dashboard is refreshed, giving the
// user time to reach the external payment page.
func NewPaymentService(client api.Client, reconciler Reconciler, scheduler Scheduler, refreshDelay time.Duration, log logging.Logger) PaymentService {
	return &paymentService{
		client:       client,
		reconciler:   reconciler,
		scheduler:    scheduler,
		refreshDelay: refreshDelay,
		log:          log.With("component", "payments"),
		newKey:       api.GenerateIdempotencyKey,
		state:        StateIdle,
	}
}

func (p *paymentService) setState(s PaymentState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func (p *paymentService) State() PaymentState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *paymentService) Pending() *models.PendingPayment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

func (p *paymentService) Initialize(ctx context.Context, amountMajor int64, currency string) (*models.PendingPayment, error) {
	if amountMajor <= 0 {
		return nil, ErrInvalidAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}

	// The server's unit of account is minor units; the conversion is exact
	// integer multiplication, fractional amounts never reach this point.
	amountMinor := amountMajor * minorUnitsFactor

	// One fresh key per submission intent. Retries of this exact request
	// reuse it server-side; a new submission gets a new one.
	key := p.newKey()

	p.setState(StateInitializing)
	pending, err := p.client.InitializePayment(ctx, amountMinor, currency, key)
	if err != nil {
		p.setState(StateIdle)
		return nil, err
	}

	p.mu.Lock()
	p.state = StateAwaitingExternalCompletion
	p.pending = pending
	if p.cancelRefresh != nil {
		p.cancelRefresh()
	}
	p.cancelRefresh = p.scheduler.Schedule(p.refreshDelay, func() {
		// The user may still be on the external page; the refresh is a pure
		// re-fetch-and-replace, so racing a manual verify is harmless.
		p.reconciler.RefreshUserHistory(context.Background())
	})
	p.mu.Unlock()

	p.log.Info(ctx, "payment initialized",
		"reference", pending.Reference, "amount_minor", amountMinor, "currency", currency)
	return pending, nil
}

func (p *paymentService) Verify(ctx context.Context, reference string) (*models.VerificationResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", common.ErrValidation)
	}

	p.setState(StateVerifying)
	result, err := p.client.VerifyPayment(ctx, reference)
	if err != nil {
		// verification did not complete; the attempt stays re-triggerable
		p.setState(StateAwaitingExternalCompletion)
		return nil, err
	}

	p.mu.Lock()
	switch result.Status {
	case models.PaymentStatusSuccess:
		p.state = StateVerified
	case models.PaymentStatusFailed, models.PaymentStatusAbandoned:
		p.state = StateVerificationFailed
	default:
		// still pending server-side; the user can verify again later
		p.state = StateAwaitingExternalCompletion
	}
	if p.pending != nil && p.pending.Reference == reference && result.Status.Settled() {
		p.pending = nil
	}
	p.mu.Unlock()

	p.log.Info(ctx, "payment verified", "reference", reference, "status", result.Status)

	// The only consistency-repair mechanism: re-fetch the authoritative
	// listing so the dashboard reflects the new truth.
	p.reconciler.RefreshUserHistory(ctx)

	return result, nil
}

func (p *paymentService) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = nil
	p.state = StateIdle
	if p.cancelRefresh != nil {
		p.cancelRefresh()
		p.cancelRefresh = nil
	}
}
