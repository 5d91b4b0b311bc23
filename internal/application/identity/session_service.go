package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopverse/storefront/internal/domain/identity"
	"github.com/shopverse/storefront/internal/infrastructure/notify"
)

// RecordStore is the local persistence slot the session is kept in
type RecordStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Config contains configuration for the session service
type Config struct {
	StorageKey string        // record key the session is persisted under
	Latency    time.Duration // simulated round-trip delay for login/register
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		StorageKey: "shopverse_user",
		Latency:    500 * time.Millisecond,
	}
}

// Service is the session store: it owns the current session exclusively.
// Login and Register resolve on a background goroutine after the simulated
// latency, so the state is guarded by a mutex; the persisted record is
// last-write-wins with no merge logic.
type Service struct {
	mu          sync.Mutex
	credentials []identity.Credential
	current     *identity.Session

	store    RecordStore
	config   Config
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewService creates a session service over the given credential records
func NewService(
	credentials []identity.Credential,
	store RecordStore,
	config Config,
	notifier notify.Notifier,
	logger *zap.Logger,
) *Service {
	copied := make([]identity.Credential, len(credentials))
	copy(copied, credentials)
	return &Service{
		credentials: copied,
		store:       store,
		config:      config,
		notifier:    notifier,
		logger:      logger.Named("session"),
	}
}

// Rehydrate loads a previously persisted session at startup. A corrupt
// record is deleted and ignored so the process starts unauthenticated
// instead of failing.
func (s *Service) Rehydrate(ctx context.Context) error {
	value, ok, err := s.store.Get(ctx, s.config.StorageKey)
	if err != nil {
		return fmt.Errorf("failed to read persisted session: %w", err)
	}
	if !ok {
		return nil
	}

	var session identity.Session
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		s.logger.Warn("discarding corrupt persisted session", zap.Error(err))
		if err := s.store.Delete(ctx, s.config.StorageKey); err != nil {
			return fmt.Errorf("failed to discard corrupt session record: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	s.logger.Info("session rehydrated", zap.String("email", session.Email))
	return nil
}

// Login validates the email and secret against the credential records after
// the simulated round trip. Bad credentials are a normal negative outcome:
// any previously active session is left untouched.
func (s *Service) Login(ctx context.Context, email, secret string) *AuthTask {
	task := newAuthTask()

	go func() {
		time.Sleep(s.config.Latency)

		for _, cred := range s.credentials {
			if cred.Matches(email, secret) {
				session := cred.Session()
				s.activate(ctx, session)

				s.notifier.Publish(notify.Notification{
					Title:       "Welcome back!",
					Description: fmt.Sprintf("Logged in as %s", session.DisplayName),
					Severity:    notify.SeveritySuccess,
				})
				s.logger.Info("login succeeded", zap.String("email", session.Email))
				task.resolve(Result{OK: true, Session: session})
				return
			}
		}

		s.notifier.Publish(notify.Notification{
			Title:       "Login failed",
			Description: "Invalid email or password",
			Severity:    notify.SeverityDestructive,
		})
		s.logger.Warn("login failed", zap.String("email", email))
		task.resolve(Result{Reason: "Invalid email or password"})
	}()

	return task
}

// Register creates a new non-administrator session after the simulated
// round trip. Registration fails when the email already exists among the
// credential records.
func (s *Service) Register(ctx context.Context, email, secret, displayName string) *AuthTask {
	task := newAuthTask()

	go func() {
		time.Sleep(s.config.Latency)

		for _, cred := range s.credentials {
			if cred.HasEmail(email) {
				s.notifier.Publish(notify.Notification{
					Title:       "Registration failed",
					Description: "User with this email already exists",
					Severity:    notify.SeverityDestructive,
				})
				s.logger.Warn("registration failed, email taken", zap.String("email", email))
				task.resolve(Result{Reason: "User with this email already exists"})
				return
			}
		}

		session := identity.Session{
			ID:          uuid.NewString(),
			Email:       email,
			DisplayName: displayName,
			Admin:       false,
		}
		s.activate(ctx, session)

		s.notifier.Publish(notify.Notification{
			Title:       "Registration successful",
			Description: fmt.Sprintf("Welcome to ShopVerse, %s!", displayName),
			Severity:    notify.SeveritySuccess,
		})
		s.logger.Info("registration succeeded", zap.String("email", email))
		task.resolve(Result{OK: true, Session: session})
	}()

	return task
}

// Logout clears the active session and its persisted record; it always
// succeeds.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, s.config.StorageKey); err != nil {
		s.logger.Error("failed to delete persisted session", zap.Error(err))
	}

	s.notifier.Publish(notify.Notification{
		Title:       "Logged out",
		Description: "You have been successfully logged out",
		Severity:    notify.SeverityDefault,
	})
	s.logger.Info("logged out")
}

// Current returns the active session, if any
func (s *Service) Current() (identity.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return identity.Session{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether a session is active
func (s *Service) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// IsAdmin reports whether the active session has the administrator flag
func (s *Service) IsAdmin() bool {
	session, ok := s.Current()
	return ok && session.Admin
}

// activate installs the session and persists it. Persistence failures are
// logged but do not fail the state transition.
func (s *Service) activate(ctx context.Context, session identity.Session) {
	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	value, err := json.Marshal(session)
	if err != nil {
		s.logger.Error("failed to serialize session", zap.Error(err))
		return
	}
	if err := s.store.Put(ctx, s.config.StorageKey, string(value)); err != nil {
		s.logger.Error("failed to persist session", zap.Error(err))
	}
}
