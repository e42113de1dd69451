package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/STORMGAMER0/Paygate/internal/client/api"
	"github.com/STORMGAMER0/Paygate/internal/client/config"
	"github.com/STORMGAMER0/Paygate/internal/client/services"
	"github.com/STORMGAMER0/Paygate/internal/client/session"
	"github.com/STORMGAMER0/Paygate/internal/common"
	"github.com/STORMGAMER0/Paygate/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the Paygate CLI together: session store, API gateway, services
// and the presentation layer.
type App struct {
	config         *config.Config
	log            logging.Logger
	sessions       *session.Store
	authService    services.AuthService
	paymentService services.PaymentService
	dashboard      *dashboard

	reader *bufio.Reader
	out    io.Writer

	// prefillEmail carries the address of a just-registered account into
	// the next login prompt.
	prefillEmail string
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := session.OpenDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	sessions := session.NewStore(session.NewSQLiteRepository(db), log)
	apiClient := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, sessions, log)

	historyService := services.NewHistoryService(apiClient, cfg.PageLimit, log)
	dash := newDashboard(historyService, os.Stdout)

	return &App{
		config:         cfg,
		log:            log,
		sessions:       sessions,
		authService:    services.NewAuthService(apiClient, sessions, log),
		paymentService: services.NewPaymentService(apiClient, dash, services.TimerScheduler{}, cfg.RefreshDelay, log),
		dashboard:      dash,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

// Run restores any persisted session and hands control to the REPL. The
// restore is the page-load step: an absent or stale session strands the
// user on the unauthenticated command set before any restricted request
// can be issued.
func (a *App) Run(ctx context.Context) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to restore session", "error", err)
	} else if sess.Authenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", sess.User.FullName)
	}

	fmt.Fprintln(a.out, "Paygate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	sess := a.sessions.Current()
	if !sess.Authenticated() {
		return ""
	}
	s := sess.User.Email
	if sess.User.IsAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().Authenticated()
}

func (a *App) isAdmin() bool {
	return a.sessions.Current().Authenticated() && a.sessions.Current().User.IsAdmin()
}

// requireAuth is the route guard: commands that need a session refuse to
// run, before any request is issued, when the client is anonymous.
func (a *App) requireAuth() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please login first.")
	return false
}

// requireAdmin guards admin-only listings; non-admin users are pointed back
// to their own dashboard instead.
func (a *App) requireAdmin() bool {
	if !a.requireAuth() {
		return false
	}
	if a.isAdmin() {
		return true
	}
	fmt.Fprintln(a.out, "Admin access required. Try 'history' for your own payments.")
	return false
}

// reportError prints a failure inline and, when the server reported the
// session unauthorized, drops it so the next prompt shows the anonymous
// command set.
func (a *App) reportError(ctx context.Context, err error) {
	if errors.Is(err, common.ErrUnauthorized) {
		fmt.Fprintln(a.out, "Your session has expired, please login again.")
		if cerr := a.authService.Invalidate(ctx); cerr != nil {
			a.log.Error(ctx, "failed to clear session", "error", cerr)
		}
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
}

// maybeInvalidate drops the session after a listing refresh that came back
// unauthorized. The refresh itself already rendered the inline error.
func (a *App) maybeInvalidate(ctx context.Context, unauthorized bool) {
	if !unauthorized {
		return
	}
	fmt.Fprintln(a.out, "Your session has expired, please login again.")
	if cerr := a.authService.Invalidate(ctx); cerr != nil {
		a.log.Error(ctx, "failed to clear session", "error", cerr)
	}
}
