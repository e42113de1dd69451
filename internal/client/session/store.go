package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/logging"
)

// Store holds the current session in memory and mirrors it to a Repository.
// The cache is the single shared mutable resource of the client; all reads
// and writes go through the mutex.
//
// State machine: Anonymous <-> Authenticated(token, user). Login success
// moves to Authenticated, logout or an unauthorized response moves back to
// Anonymous; registration never authenticates.
type Store struct {
	repo Repository
	log  logging.Logger

	mu  sync.RWMutex
	cur *models.Session

	// now is a seam for the token-expiry check in tests.
	now func() time.Time
}

func NewStore(repo Repository, log logging.Logger) *Store {
	return &Store{
		repo: repo,
		log:  log.With("component", "session"),
		cur:  models.Anonymous(),
		now:  time.Now,
	}
}

// Load reads the durable session at startup and primes the in-memory cache.
//
// It fails open: an empty store, a corrupt user record, a half-written pair
// or a locally expired token all yield the anonymous session (clearing any
// remnants) rather than an error. Only storage-level failures are returned.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	token, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	rawUser, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}

	if len(token) == 0 || len(rawUser) == 0 {
		return s.reset(ctx, len(token) != 0 || len(rawUser) != 0, "partial session")
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return s.reset(ctx, true, "corrupt user record")
	}

	if s.tokenExpired(string(token)) {
		return s.reset(ctx, true, "token expired")
	}

	sess := &models.Session{Token: string(token), User: &user}
	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
	return sess, nil
}

// reset drops the cached session and, when wipe is set, removes durable
// remnants as well. It always resolves to the anonymous session.
func (s *Store) reset(ctx context.Context, wipe bool, reason string) (*models.Session, error) {
	if wipe {
		s.log.Warn(ctx, "discarding stored session", "reason", reason)
		if err := s.repo.DeleteMany(ctx, keyToken, keyUser); err != nil {
			s.log.Error(ctx, "failed to clear stored session", "error", err)
		}
	}
	s.mu.Lock()
	s.cur = models.Anonymous()
	s.mu.Unlock()
	return models.Anonymous(), nil
}

// tokenExpired inspects the token's unverified JWT claims. Signature
// verification stays server-side; the client only avoids presenting a
// token it already knows is stale. Tokens that do not parse as JWTs are
// passed through untouched.
func (s *Store) tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}

// Set commits token and user together: one durable write, then the cache.
// There is no observable state where only one of the two is persisted.
func (s *Store) Set(ctx context.Context, token string, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}

	items := map[string][]byte{
		keyToken: []byte(token),
		keyUser:  rawUser,
	}
	if err := s.repo.SetMany(ctx, items); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.cur = &models.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Clear removes both durable entries and resets the cache to anonymous.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.DeleteMany(ctx, keyToken, keyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.mu.Lock()
	s.cur = models.Anonymous()
	s.mu.Unlock()
	return nil
}

// Current returns the cached session.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token returns the cached access token, empty when anonymous. It satisfies
// the gateway's TokenSource so every request picks up the live session.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}
