package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopverse/storefront/internal/domain/identity"
	"github.com/shopverse/storefront/internal/infrastructure/notify"
	"github.com/shopverse/storefront/internal/infrastructure/storage"
)

func testConfig() Config {
	return Config{
		StorageKey: "shopverse_user",
		Latency:    time.Millisecond,
	}
}

func newTestService(t *testing.T) (*Service, *storage.Store, *notify.Recorder) {
	t.Helper()
	store, err := storage.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	recorder := notify.NewRecorder()
	svc := NewService(identity.SeedCredentials(), store, testConfig(), recorder, zap.NewNop())
	return svc, store, recorder
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials establish a session without the secret", func(t *testing.T) {
		svc, store, recorder := newTestService(t)

		result := svc.Login(ctx, "admin@shopverse.com", "admin123").Wait()
		require.True(t, result.OK)
		assert.Equal(t, "Admin User", result.Session.DisplayName)
		assert.True(t, result.Session.Admin)

		assert.True(t, svc.IsAuthenticated())
		assert.True(t, svc.IsAdmin())

		last, ok := recorder.Last()
		require.True(t, ok)
		assert.Equal(t, "Welcome back!", last.Title)

		value, ok, err := store.Get(ctx, "shopverse_user")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, value, "admin@shopverse.com")
		assert.NotContains(t, value, "admin123")
	})

	t.Run("wrong-case email does not authenticate", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		result := svc.Login(ctx, "ADMIN@SHOPVERSE.COM", "admin123").Wait()
		assert.False(t, result.OK)
		assert.Equal(t, "Invalid email or password", result.Reason)
		assert.False(t, svc.IsAuthenticated())
	})

	t.Run("wrong credentials leave state unauthenticated", func(t *testing.T) {
		svc, _, recorder := newTestService(t)

		result := svc.Login(ctx, "admin@shopverse.com", "wrong").Wait()
		assert.False(t, result.OK)
		assert.Equal(t, "Invalid email or password", result.Reason)
		assert.False(t, svc.IsAuthenticated())

		last, ok := recorder.Last()
		require.True(t, ok)
		assert.Equal(t, "Login failed", last.Title)
		assert.Equal(t, notify.SeverityDestructive, last.Severity)
	})

	t.Run("failed login does not alter an active session", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		require.True(t, svc.Login(ctx, "user@shopverse.com", "user123").Wait().OK)
		require.False(t, svc.Login(ctx, "user@shopverse.com", "wrong").Wait().OK)

		session, ok := svc.Current()
		require.True(t, ok)
		assert.Equal(t, "user@shopverse.com", session.Email)
	})

	t.Run("non-admin session is authenticated but not admin", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		require.True(t, svc.Login(ctx, "user@shopverse.com", "user123").Wait().OK)
		assert.True(t, svc.IsAuthenticated())
		assert.False(t, svc.IsAdmin())
	})

	t.Run("task resolves exactly once", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		task := svc.Login(ctx, "user@shopverse.com", "user123")
		first := task.Wait()
		second := task.Wait()
		assert.Equal(t, first, second)

		select {
		case <-task.Done():
		default:
			t.Fatal("done channel should be closed after resolution")
		}
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new email creates a non-admin session", func(t *testing.T) {
		svc, store, recorder := newTestService(t)

		result := svc.Register(ctx, "new@shopverse.com", "secret", "New User").Wait()
		require.True(t, result.OK)
		assert.NotEmpty(t, result.Session.ID)
		assert.False(t, result.Session.Admin)
		assert.True(t, svc.IsAuthenticated())
		assert.False(t, svc.IsAdmin())

		last, ok := recorder.Last()
		require.True(t, ok)
		assert.Equal(t, "Registration successful", last.Title)

		_, ok, err := store.Get(ctx, "shopverse_user")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("existing email fails without creating a session", func(t *testing.T) {
		svc, _, recorder := newTestService(t)

		result := svc.Register(ctx, "user@shopverse.com", "secret", "Someone Else").Wait()
		assert.False(t, result.OK)
		assert.False(t, svc.IsAuthenticated())

		last, ok := recorder.Last()
		require.True(t, ok)
		assert.Equal(t, "Registration failed", last.Title)
	})

	t.Run("duplicate check compares emails exactly", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		// A differently-cased variant of an existing email is a distinct
		// record, so registration goes through.
		result := svc.Register(ctx, "User@ShopVerse.com", "secret", "Someone Else").Wait()
		assert.True(t, result.OK)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears session and persisted record", func(t *testing.T) {
		svc, store, recorder := newTestService(t)
		require.True(t, svc.Login(ctx, "user@shopverse.com", "user123").Wait().OK)

		svc.Logout(ctx)
		assert.False(t, svc.IsAuthenticated())

		_, ok, err := store.Get(ctx, "shopverse_user")
		require.NoError(t, err)
		assert.False(t, ok)

		last, ok := recorder.Last()
		require.True(t, ok)
		assert.Equal(t, "Logged out", last.Title)
	})

	t.Run("logout without a session still succeeds", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		svc.Logout(ctx)
		assert.False(t, svc.IsAuthenticated())
	})
}

func TestRehydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("restores a previously persisted session", func(t *testing.T) {
		store, err := storage.Open(":memory:", nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })

		first := NewService(identity.SeedCredentials(), store, testConfig(), notify.NewRecorder(), zap.NewNop())
		require.True(t, first.Login(ctx, "admin@shopverse.com", "admin123").Wait().OK)

		second := NewService(identity.SeedCredentials(), store, testConfig(), notify.NewRecorder(), zap.NewNop())
		require.NoError(t, second.Rehydrate(ctx))

		assert.True(t, second.IsAuthenticated())
		assert.True(t, second.IsAdmin())
	})

	t.Run("missing record starts unauthenticated", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		require.NoError(t, svc.Rehydrate(ctx))
		assert.False(t, svc.IsAuthenticated())
	})

	t.Run("corrupt record is discarded, not fatal", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		require.NoError(t, store.Put(ctx, "shopverse_user", "{not json"))

		require.NoError(t, svc.Rehydrate(ctx))
		assert.False(t, svc.IsAuthenticated())

		// The corrupt record is deleted, not left behind.
		_, ok, err := store.Get(ctx, "shopverse_user")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
