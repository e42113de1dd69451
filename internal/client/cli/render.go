package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/client/services"
)

const noRecordsPlaceholder = "No records found."

// dashboard is the presentation side of reconciliation: it wraps the
// history service, renders every refreshed view wholesale, and is handed to
// the payment orchestrator as its Reconciler so scheduled refreshes reach
// the screen too. Rendering is serialized; a scheduled refresh may race a
// manual one, and both replace the whole listing.
type dashboard struct {
	history services.HistoryService
	out     io.Writer
	mu      sync.Mutex
}

func newDashboard(history services.HistoryService, out io.Writer) *dashboard {
	return &dashboard{history: history, out: out}
}

func (d *dashboard) RefreshUserHistory(ctx context.Context) *services.HistoryView {
	view := d.history.RefreshUserHistory(ctx)
	d.mu.Lock()
	defer d.mu.Unlock()
	renderHistory(d.out, view)
	return view
}

func (d *dashboard) RefreshAdminUsers(ctx context.Context) *services.UsersView {
	view := d.history.RefreshAdminUsers(ctx)
	d.mu.Lock()
	defer d.mu.Unlock()
	renderUsers(d.out, view)
	return view
}

func (d *dashboard) RefreshAdminTransactions(ctx context.Context, status models.PaymentStatus) *services.TransactionsView {
	view := d.history.RefreshAdminTransactions(ctx, status)
	d.mu.Lock()
	defer d.mu.Unlock()
	renderTransactions(d.out, view)
	return view
}

func formatAmount(minor int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func renderHistory(w io.Writer, view *services.HistoryView) {
	switch view.State {
	case services.RenderStateError:
		fmt.Fprintf(w, "Could not load payment history: %s\n", view.Err)
	case services.RenderStateEmpty:
		fmt.Fprintln(w, noRecordsPlaceholder)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "REFERENCE\tAMOUNT\tSTATUS\tCREATED\tVERIFIED")
		for _, p := range view.Payments {
			verified := "-"
			if p.VerifiedAt != nil {
				verified = formatTime(*p.VerifiedAt)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				p.Reference, formatAmount(p.Amount, p.Currency), p.Status, formatTime(p.CreatedAt), verified)
		}
		tw.Flush()
		fmt.Fprintf(w, "Showing %d of %d payment(s), %d successful\n",
			view.Count, view.ServerTotal, view.SuccessCount)
	}
}

func renderUsers(w io.Writer, view *services.UsersView) {
	switch view.State {
	case services.RenderStateError:
		fmt.Fprintf(w, "Could not load users: %s\n", view.Err)
	case services.RenderStateEmpty:
		fmt.Fprintln(w, noRecordsPlaceholder)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLE\tACTIVE\tCREATED")
		for _, u := range view.Users {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\t%s\n",
				u.ID, u.Email, u.FullName, u.Role, u.IsActive, formatTime(u.CreatedAt))
		}
		tw.Flush()
		fmt.Fprintf(w, "Showing %d of %d user(s)\n", view.Count, view.ServerTotal)
	}
}

func renderTransactions(w io.Writer, view *services.TransactionsView) {
	switch view.State {
	case services.RenderStateError:
		fmt.Fprintf(w, "Could not load transactions: %s\n", view.Err)
	case services.RenderStateEmpty:
		fmt.Fprintln(w, noRecordsPlaceholder)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "REFERENCE\tUSER\tAMOUNT\tSTATUS\tCREATED")
		for _, tr := range view.Transactions {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				tr.Reference, tr.UserEmail, formatAmount(tr.Amount, tr.Currency), tr.Status, formatTime(tr.CreatedAt))
		}
		tw.Flush()
		fmt.Fprintf(w, "Showing %d of %d transaction(s), %d successful\n",
			view.Count, view.ServerTotal, view.SuccessCount)
	}
}
