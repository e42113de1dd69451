package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
)

// Pay walks the user through initializing a payment: amount in whole major
// units, optional currency, then the external authorization link. Completing
// the payment happens on the third-party page; the user returns and runs
// 'verify' (in this session or a later one).
func (a *App) Pay(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	raw, err := getSimpleText(a.reader, "Enter amount (whole major units, e.g. 50)", a.out)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// caught before any network call
		fmt.Fprintf(a.out, "Invalid amount %q: enter a whole number.\n", raw)
		return nil
	}

	currency, err := getTextWithDefault(a.reader, "Enter currency", "NGN", a.out)
	if err != nil {
		return err
	}

	pending, err := a.paymentService.Initialize(ctx, amount, currency)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Payment initialized.")
	fmt.Fprintf(a.out, "Reference: %s\n", pending.Reference)
	fmt.Fprintf(a.out, "Complete your payment here: %s\n", pending.AuthorizationURL)
	fmt.Fprintf(a.out, "When done, run: verify %s\n", pending.Reference)
	return nil
}

// Verify checks with the server what actually happened to a payment. With
// no argument it falls back to the active pending payment's reference, so
// 'verify' right after 'pay' just works; with an argument any listed
// reference can be re-verified, including ones from earlier sessions.
func (a *App) Verify(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}

	var reference string
	if len(args) > 0 {
		reference = args[0]
	} else if pending := a.paymentService.Pending(); pending != nil {
		reference = pending.Reference
	} else {
		var err error
		reference, err = getSimpleText(a.reader, "Enter payment reference", a.out)
		if err != nil {
			return err
		}
	}

	result, err := a.paymentService.Verify(ctx, reference)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	switch result.Status {
	case models.PaymentStatusSuccess:
		fmt.Fprintf(a.out, "Payment %s confirmed: %s paid", result.Reference, formatAmount(result.Amount, result.Currency))
		if result.PaidAt != nil {
			fmt.Fprintf(a.out, " at %s", formatTime(*result.PaidAt))
		}
		fmt.Fprintln(a.out)
	case models.PaymentStatusPending:
		fmt.Fprintf(a.out, "Payment %s is still pending. Complete it on the payment page and verify again.\n", result.Reference)
	default:
		fmt.Fprintf(a.out, "Payment %s did not complete (status: %s).\n", result.Reference, result.Status)
	}
	return nil
}

// Dismiss discards the active pending payment, e.g. when the user changed
// their mind before following the authorization link. Nothing is cancelled
// server-side.
func (a *App) Dismiss(ctx context.Context) error {
	a.paymentService.Dismiss()
	fmt.Fprintln(a.out, "Pending payment dismissed.")
	return nil
}
