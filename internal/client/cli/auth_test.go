package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/client/services"
	"github.com/STORMGAMER0/Paygate/internal/client/session"
	"github.com/STORMGAMER0/Paygate/internal/logging"
)

func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origTD, origGP := getSimpleText, getTextWithDefault, getPassword
	i := 0
	next := func() string {
		if i >= len(texts) {
			t.Fatalf("unexpected extra prompt")
		}
		s := texts[i]
		i++
		return s
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getTextWithDefault = func(_ *bufio.Reader, _, def string, _ io.Writer) (string, error) {
		if s := next(); s != "" {
			return s, nil
		}
		return def, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	return func() {
		getSimpleText = origST
		getTextWithDefault = origTD
		getPassword = origGP
	}
}

type fakeAuth struct {
	regEmail    string
	regPass     []byte
	regFullName string
	regErr      error

	loginEmail string
	loginPass  []byte
	loginUser  *models.User
	loginErr   error

	logoutCalled     bool
	invalidateCalled bool

	profileCalled bool
	profileUser   *models.User
	profileErr    error
}

func (f *fakeAuth) Register(_ context.Context, email string, password []byte, fullName string) error {
	f.regEmail, f.regFullName = email, fullName
	f.regPass = append([]byte(nil), password...)
	return f.regErr
}
func (f *fakeAuth) Login(_ context.Context, email string, password []byte) (*models.User, error) {
	f.loginEmail = email
	f.loginPass = append([]byte(nil), password...)
	return f.loginUser, f.loginErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}
func (f *fakeAuth) Invalidate(context.Context) error {
	f.invalidateCalled = true
	return nil
}
func (f *fakeAuth) Profile(context.Context) (*models.User, error) {
	f.profileCalled = true
	return f.profileUser, f.profileErr
}

type fakePayments struct {
	initAmount   int64
	initCurrency string
	initPending  *models.PendingPayment
	initErr      error

	verifyRef    string
	verifyResult *models.VerificationResult
	verifyErr    error

	pending   *models.PendingPayment
	dismissed bool
}

func (f *fakePayments) Initialize(_ context.Context, amountMajor int64, currency string) (*models.PendingPayment, error) {
	f.initAmount, f.initCurrency = amountMajor, currency
	return f.initPending, f.initErr
}
func (f *fakePayments) Verify(_ context.Context, reference string) (*models.VerificationResult, error) {
	f.verifyRef = reference
	return f.verifyResult, f.verifyErr
}
func (f *fakePayments) Dismiss() {
	f.dismissed = true
	f.pending = nil
}
func (f *fakePayments) State() services.PaymentState    { return services.StateIdle }
func (f *fakePayments) Pending() *models.PendingPayment { return f.pending }

type fakeHistory struct {
	historyCalls int
	usersCalls   int
	txCalls      int
	txStatus     models.PaymentStatus

	historyView *services.HistoryView
	usersView   *services.UsersView
	txView      *services.TransactionsView
}

func (f *fakeHistory) RefreshUserHistory(context.Context) *services.HistoryView {
	f.historyCalls++
	if f.historyView != nil {
		return f.historyView
	}
	return &services.HistoryView{State: services.RenderStateEmpty}
}
func (f *fakeHistory) RefreshAdminUsers(context.Context) *services.UsersView {
	f.usersCalls++
	if f.usersView != nil {
		return f.usersView
	}
	return &services.UsersView{State: services.RenderStateEmpty}
}
func (f *fakeHistory) RefreshAdminTransactions(_ context.Context, status models.PaymentStatus) *services.TransactionsView {
	f.txCalls++
	f.txStatus = status
	if f.txView != nil {
		return f.txView
	}
	return &services.TransactionsView{State: services.RenderStateEmpty}
}

type testApp struct {
	*App
	auth     *fakeAuth
	payments *fakePayments
	history  *fakeHistory
	out      *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	auth := &fakeAuth{}
	payments := &fakePayments{}
	history := &fakeHistory{}
	out := &bytes.Buffer{}
	app := &App{
		log:            log,
		sessions:       session.NewStore(session.NewMemoryRepository(), log),
		authService:    auth,
		paymentService: payments,
		dashboard:      newDashboard(history, out),
		reader:         bufio.NewReader(strings.NewReader("")),
		out:            out,
	}
	return &testApp{App: app, auth: auth, payments: payments, history: history, out: out}
}

func (ta *testApp) loginAs(t *testing.T, role models.Role) {
	t.Helper()
	user := &models.User{ID: 7, Email: "alice@example.org", FullName: "Alice", Role: role, IsActive: true}
	require.NoError(t, ta.sessions.Set(context.Background(), "tok", user))
}

func TestRegister_Success(t *testing.T) {
	ta := newTestApp(t)
	restore := stubInputs(t, []string{"alice@example.org", "Alice"}, []byte("secret"))
	defer restore()

	require.NoError(t, ta.Register(context.Background()))

	assert.Equal(t, "alice@example.org", ta.auth.regEmail)
	assert.Equal(t, "Alice", ta.auth.regFullName)
	assert.Equal(t, "secret", string(ta.auth.regPass))
	assert.Equal(t, "alice@example.org", ta.prefillEmail)
	assert.Contains(t, ta.out.String(), "Account created. You can now login.")
}

func TestLogin_UserLandsOnDashboard(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.loginUser = &models.User{Email: "alice@example.org", FullName: "Alice", Role: models.RoleUser}
	restore := stubInputs(t, []string{"alice@example.org"}, []byte("secret"))
	defer restore()

	require.NoError(t, ta.Login(context.Background()))

	assert.Equal(t, 1, ta.history.historyCalls)
	assert.Equal(t, 0, ta.history.txCalls)
	assert.Contains(t, ta.out.String(), "Welcome, Alice!")
}

func TestLogin_AdminLandsOnAdminDashboard(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.loginUser = &models.User{Email: "root@example.org", FullName: "Root", Role: models.RoleAdmin}
	restore := stubInputs(t, []string{"root@example.org"}, []byte("secret"))
	defer restore()

	require.NoError(t, ta.Login(context.Background()))

	assert.Equal(t, 1, ta.history.txCalls)
	assert.Equal(t, 0, ta.history.historyCalls)
}

func TestLogin_FailureShowsServerMessage(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.loginErr = errors.New("Incorrect email or password")
	restore := stubInputs(t, []string{"alice@example.org"}, []byte("wrong"))
	defer restore()

	require.Error(t, ta.Login(context.Background()))

	assert.Contains(t, ta.out.String(), "Incorrect email or password")
	assert.Zero(t, ta.history.historyCalls)
}

func TestLogin_PrefillUsedAsDefault(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.loginUser = &models.User{Email: "bob@example.org", FullName: "Bob", Role: models.RoleUser}
	ta.prefillEmail = "bob@example.org"
	restore := stubInputs(t, []string{""}, []byte("secret"))
	defer restore()

	require.NoError(t, ta.Login(context.Background()))

	assert.Equal(t, "bob@example.org", ta.auth.loginEmail)
	assert.Empty(t, ta.prefillEmail)
}

func TestLogout_DismissesPendingAndClears(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, models.RoleUser)

	require.NoError(t, ta.Logout(context.Background()))

	assert.True(t, ta.payments.dismissed)
	assert.True(t, ta.auth.logoutCalled)
	assert.Contains(t, ta.out.String(), "Logged out.")
}

func TestProfile_RequiresAuth(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.Profile(context.Background()))

	assert.False(t, ta.auth.profileCalled)
	assert.Contains(t, ta.out.String(), "Please login first.")
}
