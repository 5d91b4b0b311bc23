package identity

import (
	"sync"

	"github.com/shopverse/storefront/internal/domain/identity"
)

// Result is the outcome of a login or register attempt. A failed attempt is
// a normal negative outcome, never an error.
type Result struct {
	OK      bool
	Session identity.Session // zero value unless OK
	Reason  string           // human-readable failure reason
}

// AuthTask is the deferred result of an in-flight login or register. The
// task resolves exactly once; Wait blocks until the simulated round trip
// completes. There is no cancellation: an abandoned task still applies its
// state transition when it resolves.
type AuthTask struct {
	once   sync.Once
	done   chan struct{}
	result Result
}

func newAuthTask() *AuthTask {
	return &AuthTask{done: make(chan struct{})}
}

func (t *AuthTask) resolve(r Result) {
	t.once.Do(func() {
		t.result = r
		close(t.done)
	})
}

// Wait blocks until the task resolves and returns its result
func (t *AuthTask) Wait() Result {
	<-t.done
	return t.result
}

// Done is closed once the task has resolved
func (t *AuthTask) Done() <-chan struct{} {
	return t.done
}
